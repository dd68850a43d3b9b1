package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:100;not null"`
	Email        string         `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"size:256;not null"`
	Role         string         `json:"role" gorm:"size:20;default:'client'"` // super_admin, admin, client
	Whatsapp     string         `json:"whatsapp" gorm:"size:20"`
	Street       string         `json:"street" gorm:"size:200"`
	Number       string         `json:"number" gorm:"size:20"`
	Neighborhood string         `json:"neighborhood" gorm:"size:100"`
	Complement   string         `json:"complement" gorm:"size:100"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Orders []Order `json:"-" gorm:"foreignKey:UserID"`
}

type UserRole string

const (
	SuperAdmin UserRole = "super_admin"
	Admin      UserRole = "admin"
	Client     UserRole = "client"
)

func (u *User) IsAdmin() bool {
	return u.Role == string(Admin) || u.Role == string(SuperAdmin)
}

// SetPassword hashes the plain-text password with bcrypt.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plain-text password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
