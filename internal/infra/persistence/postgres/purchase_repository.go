package postgres

import (
	"context"

	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the domain.PurchaseRepository interface using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create persists a purchase record.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := &model.PurchaseModel{
		ID:        purchase.ID,
		ProductID: purchase.ProductID,
		Quantity:  purchase.Quantity,
		UnitCost:  purchase.UnitCost,
		Total:     purchase.Total,
		UserID:    purchase.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("purchase references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.OccurredAt = purchaseM.OccurredAt

	return nil
}

// List returns all purchases, newest first, with product and user preloaded.
func (repo *purchaseRepository) List(ctx context.Context) ([]*entity.Purchase, error) {
	var purchaseMs []model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		Order("occurred_at DESC").
		Find(&purchaseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseMs))
	for i := range purchaseMs {
		purchases = append(purchases, toPurchaseDomain(&purchaseMs[i]))
	}

	return purchases, nil
}

func toPurchaseDomain(m *model.PurchaseModel) *entity.Purchase {
	purchase := &entity.Purchase{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitCost:   m.UnitCost,
		Total:      m.Total,
		OccurredAt: m.OccurredAt,
		UserID:     m.UserID,
	}
	if m.Product != nil {
		purchase.Product = toProductDomain(m.Product)
	}
	if m.User != nil {
		purchase.User = toUserDomain(m.User)
	}

	return purchase
}
