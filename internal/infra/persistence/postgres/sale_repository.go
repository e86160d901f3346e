package postgres

import (
	"context"

	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists the sale header together with all of its lines.
// GORM inserts the association rows with the header in one statement batch;
// atomicity with the stock decrements comes from the enclosing transaction.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("sale line references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	// Propagate generated identifiers and the creation timestamp.
	sale.ID = saleM.ID
	sale.OccurredAt = saleM.OccurredAt
	for i, lineM := range saleM.Lines {
		sale.Lines[i].ID = lineM.ID
		sale.Lines[i].SaleID = saleM.ID
	}

	return nil
}

// FindByID retrieves a sale with lines, products and seller preloaded.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("Seller").
		Preload("Lines").
		Preload("Lines.Product").
		Where("id = ?", id).
		First(&saleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(&saleM), nil
}

// List returns all sales, newest first, with seller preloaded.
func (repo *saleRepository) List(ctx context.Context) ([]*entity.Sale, error) {
	var saleMs []model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("Seller").
		Order("occurred_at DESC").
		Find(&saleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return toSaleDomainSlice(saleMs), nil
}

// ListBySeller returns the sales recorded by one user, newest first.
func (repo *saleRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Sale, error) {
	var saleMs []model.SaleModel
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("occurred_at DESC").
		Find(&saleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales by seller")
	}

	return toSaleDomainSlice(saleMs), nil
}

func toSaleDomainSlice(saleMs []model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, 0, len(saleMs))
	for i := range saleMs {
		sales = append(sales, toSaleDomain(&saleMs[i]))
	}

	return sales
}

func toSaleDomain(m *model.SaleModel) *entity.Sale {
	sale := &entity.Sale{
		ID:         m.ID,
		OccurredAt: m.OccurredAt,
		Total:      m.Total,
		SellerID:   m.SellerID,
	}
	if m.Seller != nil {
		sale.Seller = toUserDomain(m.Seller)
	}
	for i := range m.Lines {
		sale.Lines = append(sale.Lines, toSaleLineDomain(&m.Lines[i]))
	}

	return sale
}

func toSaleLineDomain(m *model.SaleLineModel) *entity.SaleLine {
	line := &entity.SaleLine{
		ID:        m.ID,
		SaleID:    m.SaleID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Subtotal:  m.Subtotal,
	}
	if m.Product != nil {
		line.Product = toProductDomain(m.Product)
	}

	return line
}

func fromSaleDomain(sale *entity.Sale) *model.SaleModel {
	saleM := &model.SaleModel{
		ID:       sale.ID,
		Total:    sale.Total,
		SellerID: sale.SellerID,
	}
	for _, line := range sale.Lines {
		saleM.Lines = append(saleM.Lines, model.SaleLineModel{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return saleM
}
