// Package model holds the GORM persistence models mirrored from the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Cedula       *string   `gorm:"type:varchar(20);unique"`
	Email        string    `gorm:"type:varchar(255);unique;not null;index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Phone        string    `gorm:"type:varchar(20)"`
	Address      string    `gorm:"type:varchar(100)"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Sales     []SaleModel     `gorm:"foreignKey:SellerID"`
	Purchases []PurchaseModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
