package dashboard

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// ProductDelivery is one entry of the top products list.
type ProductDelivery struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
}

// ProductDeliveries is an ordered mapping from product to delivered quantity.
// Entries are sorted by non-increasing quantity; every quantity is positive.
type ProductDeliveries struct {
	entries []ProductDelivery
	index   map[kernel.UUID]int
}

// NewProductDeliveries validates the ordering and uniqueness of entries.
func NewProductDeliveries(entries []ProductDelivery) (ProductDeliveries, error) {
	pd := ProductDeliveries{
		entries: make([]ProductDelivery, 0, len(entries)),
		index:   make(map[kernel.UUID]int, len(entries)),
	}

	for i, e := range entries {
		param := fmt.Sprintf("productDeliveries[%d]", i)

		if err := e.ProductID.Validate(); err != nil {
			return ProductDeliveries{}, errs.NewValueIsRequiredErrorWithCause(param, err)
		}
		if e.Quantity <= 0 {
			return ProductDeliveries{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("quantity %d is not greater than 0", e.Quantity))
		}
		if i > 0 && e.Quantity > entries[i-1].Quantity {
			return ProductDeliveries{}, errs.NewValueIsInvalidErrorWithCause(param, errors.New("entries are not sorted by descending quantity"))
		}
		if _, dup := pd.index[e.ProductID]; dup {
			return ProductDeliveries{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("duplicate product %s", e.ProductID))
		}

		pd.index[e.ProductID] = i
		pd.entries = append(pd.entries, e)
	}

	return pd, nil
}

// Entries returns a copy of the entries, highest quantity first.
func (pd ProductDeliveries) Entries() []ProductDelivery {
	return append([]ProductDelivery(nil), pd.entries...)
}

// Get returns the delivered quantity for a product.
func (pd ProductDeliveries) Get(productID kernel.UUID) (int, bool) {
	i, ok := pd.index[productID]
	if !ok {
		return 0, false
	}
	return pd.entries[i].Quantity, true
}

func (pd ProductDeliveries) Len() int {
	return len(pd.entries)
}
