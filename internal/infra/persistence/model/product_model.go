package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
// Product rows RESTRICT category deletion: a category that still owns
// products cannot be removed, so historical sale lines survive catalog edits.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(100);unique;not null"`

	Products []ProductModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. The CHECK on stock backs the
// ledger invariant at the storage layer.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string          `gorm:"type:varchar(100);not null;index"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock      int             `gorm:"not null;check:stock >= 0"`
	MinStock   int             `gorm:"column:min_stock;not null;check:min_stock >= 0"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
