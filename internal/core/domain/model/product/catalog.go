package product

import (
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Catalog resolves product identifiers to products. It is immutable once built
// and safe for concurrent reads.
type Catalog struct {
	byID     map[kernel.UUID]*Product
	products []*Product
}

// NewCatalog indexes the given products. Every product must be constructed and
// identifiers must be unique.
func NewCatalog(products []*Product) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[kernel.UUID]*Product, len(products)),
		products: make([]*Product, 0, len(products)),
	}

	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("products[%d]", i), err)
		}
		if _, exists := c.byID[p.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("products[%d]", i),
				fmt.Errorf("duplicate product id %s", p.ID()),
			)
		}

		c.byID[p.ID()] = p
		c.products = append(c.products, p)
	}

	return c, nil
}

// Get returns the product with the given identifier.
func (c *Catalog) Get(id kernel.UUID) (*Product, bool) {
	if c == nil {
		return nil, false
	}

	p, ok := c.byID[id]
	return p, ok
}

// Products returns the catalog content in insertion order.
func (c *Catalog) Products() []*Product {
	if c == nil {
		return nil
	}

	return append([]*Product(nil), c.products...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.products)
}
