package migrations

import (
	"lanchonete/internal/database"
	"lanchonete/internal/models"
	"lanchonete/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Reset drops and recreates every table, then seeds the default data. Meant
// for the init script and local development, never for a running store.
func Reset(db *gorm.DB, adminEmail, adminPassword string) error {
	logrus.Info("dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Coupon{},
		&models.Neighborhood{},
		&models.Product{},
		&models.User{},
	)
	if err != nil {
		logrus.Warnf("error dropping tables: %v", err)
	}

	logrus.Info("creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	return seedDefaultData(db, adminEmail, adminPassword)
}

func seedDefaultData(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	if err := seedMenu(db); err != nil {
		return err
	}
	if err := seedNeighborhoods(db); err != nil {
		return err
	}
	return seedCoupons(db)
}

func seedAdmin(db *gorm.DB, email, password string) error {
	userRepo := repository.NewUserRepository(db)

	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.Info("admin user already exists")
		return nil
	}

	admin := &models.User{
		Name:  "Administrador",
		Email: email,
		Role:  string(models.SuperAdmin),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	logrus.WithField("email", email).Info("admin user created")
	return nil
}

func seedMenu(db *gorm.DB) error {
	adicionais := []models.CustomizationOption{
		{Name: "Hambúrguer", Price: decimal.NewFromFloat(2.5)},
		{Name: "Hambúrguer Artesanal", Price: decimal.NewFromFloat(5.0)},
		{Name: "Mussarela", Price: decimal.NewFromFloat(3.0)},
		{Name: "Bacon", Price: decimal.NewFromFloat(3.0)},
		{Name: "Salsicha", Price: decimal.NewFromFloat(2.0)},
		{Name: "Ovo", Price: decimal.NewFromFloat(2.0)},
		{Name: "Requeijão ou cheddar", Price: decimal.NewFromFloat(2.0)},
		{Name: "Batata Palha", Price: decimal.NewFromFloat(3.0)},
	}
	acompanhamentos := []models.CustomizationOption{
		{Name: "Porção de batata porção inteira", Price: decimal.NewFromFloat(30.0)},
		{Name: "Porção de batata porção 1/2", Price: decimal.NewFromFloat(20.0)},
		{Name: "Bacon e cheddar porção inteira", Price: decimal.NewFromFloat(40.0)},
		{Name: "Bacon e cheddar porção 1/2", Price: decimal.NewFromFloat(30.0)},
		{Name: "Calabresa porção inteira", Price: decimal.NewFromFloat(40.0)},
		{Name: "Calabresa porção 1/2", Price: decimal.NewFromFloat(25.0)},
	}

	products := []models.Product{
		{
			Name:        "FALCÃO",
			Price:       decimal.NewFromFloat(30.0),
			Category:    "Lanche",
			Description: "Pão, presunto, mussarela, ovo, requeijão, bacon, milho, alface, tomate.",
			ImageURL:    "assets/falcao.jpg",
			IsAvailable: true,
			Details: models.CustomizationCatalog{
				"carnes": {
					{Name: "Frango", Price: decimal.Zero},
					{Name: "Lombo", Price: decimal.Zero},
					{Name: "Filé", Price: decimal.Zero},
				},
				"acompanhamentos": acompanhamentos,
				"adicionais":      adicionais,
			},
		},
		{
			Name:        "ÁGUIA",
			Price:       decimal.NewFromFloat(35.0),
			Category:    "Lanche",
			Description: "Pão, Hambúrguer da casa, duas fatias de presunto, mussarela, ovo, bacon, cenoura, milho, alface, tomate.",
			ImageURL:    "assets/aguia.jpg",
			IsAvailable: true,
			Details: models.CustomizationCatalog{
				"carnes": {
					{Name: "Hambúrguer", Price: decimal.Zero},
				},
				"acompanhamentos": acompanhamentos,
				"adicionais":      adicionais,
			},
		},
		{
			Name:        "Coca-Cola Lata",
			Price:       decimal.NewFromFloat(6.0),
			Category:    "Bebida",
			Description: "350ml gelada.",
			IsAvailable: true,
			Details:     models.CustomizationCatalog{},
		},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	logrus.WithField("count", len(products)).Info("menu seeded")
	return nil
}

func seedNeighborhoods(db *gorm.DB) error {
	neighborhoods := []models.Neighborhood{
		{Name: "Centro", Price: decimal.NewFromFloat(5.0), IsActive: true},
		{Name: "Jardim das Flores", Price: decimal.NewFromFloat(8.0), IsActive: true},
		{Name: "Vila Nova", Price: decimal.NewFromFloat(10.0), IsActive: true},
	}
	for i := range neighborhoods {
		if err := db.Create(&neighborhoods[i]).Error; err != nil {
			return err
		}
	}
	logrus.WithField("count", len(neighborhoods)).Info("neighborhoods seeded")
	return nil
}

func seedCoupons(db *gorm.DB) error {
	limit := 100
	coupon := models.Coupon{
		Code:            "BEMVINDO10",
		DiscountPercent: decimal.NewFromInt(10),
		MinPurchase:     decimal.NewFromInt(30),
		UsageLimit:      &limit,
		IsActive:        true,
	}
	if err := db.Create(&coupon).Error; err != nil {
		return err
	}
	logrus.WithField("code", coupon.Code).Info("coupon seeded")
	return nil
}
