package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error

	// Get returns *errs.ObjectNotFoundError when no product has the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll returns every product ordered by category and name.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
