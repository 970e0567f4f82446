package order

import (
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Item is one line of an order: a product reference and the ordered quantity.
// Items are values; the product is referenced by identity only.
type Item struct {
	productID kernel.UUID
	quantity  int
}

// NewItem creates a validated line item. The quantity must be greater than 0.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{productID: productID, quantity: quantity}, nil
}

// RestoreItem rebuilds an item read from storage without validation, so that
// malformed stored lines reach the aggregators, which report them.
func RestoreItem(productID kernel.UUID, quantity int) Item {
	return Item{productID: productID, quantity: quantity}
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}
