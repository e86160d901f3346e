package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel mirrors the 'sales' table. Sales are append-only.
type SaleModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OccurredAt time.Time       `gorm:"not null;index;autoCreateTime"`
	Total      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SellerID   uuid.UUID       `gorm:"type:uuid;not null;index"`

	Seller *UserModel      `gorm:"foreignKey:SellerID"`
	Lines  []SaleLineModel `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleLineModel mirrors the 'sale_lines' table.
type SaleLineModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleLineModel) TableName() string {
	return "sale_lines"
}
