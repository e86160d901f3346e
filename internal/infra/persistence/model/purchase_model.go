package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseModel mirrors the 'purchases' table.
type PurchaseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null;check:quantity > 0"`
	UnitCost   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OccurredAt time.Time       `gorm:"not null;index;autoCreateTime"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
	User    *UserModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
