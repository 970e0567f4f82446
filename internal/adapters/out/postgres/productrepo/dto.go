// Package productrepo persists the product catalog in the products table.
//
// Prices are stored as NUMERIC and read back into decimal.Decimal without
// passing through floating point. The catalog is seeded by migrations and
// read in bulk for snapshots; GetAll orders products by category and name so
// the product list and the catalog come back in a stable order.
package productrepo

import (
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"not null"`
	Category string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Category: p.Category(),
		Price:    p.Price(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, dto.Category, dto.Price)
}
