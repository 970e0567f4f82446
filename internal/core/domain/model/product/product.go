package product

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an item the bakery sells.
//
// Invariants:
//   - valid identifier
//   - non-blank name and category
//   - non-negative price
type Product struct {
	id       kernel.UUID
	name     string
	category string
	price    decimal.Decimal

	isConstructed bool
}

// NewProduct creates a validated product.
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), "Croissant", "Viennoiserie", decimal.RequireFromString("2.40"))
func NewProduct(id kernel.UUID, name, category string, price decimal.Decimal) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

// Category groups products in the sales report, e.g. "Bread" or "Pastry".
func (p *Product) Category() string {
	return p.category
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	p.price = price
	return nil
}
