package database

import (
	"fmt"
	"net/url"
	"strconv"

	"lanchonete/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize connects to Postgres and migrates the schema. statementTimeoutMS
// bounds how long a stuck transaction can hold a product row lock and block
// concurrent orders.
func Initialize(databaseURL string, statementTimeoutMS int) (*gorm.DB, error) {
	dsn, err := withStatementTimeout(databaseURL, statementTimeoutMS)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Info("database connected and migrated")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Neighborhood{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// withStatementTimeout appends a statement_timeout runtime parameter to the
// connection URL; pgx passes unknown query parameters to the server.
func withStatementTimeout(databaseURL string, timeoutMS int) (string, error) {
	if timeoutMS <= 0 {
		return databaseURL, nil
	}
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	if q.Get("statement_timeout") == "" {
		q.Set("statement_timeout", strconv.Itoa(timeoutMS))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
