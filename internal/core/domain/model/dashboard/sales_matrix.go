package dashboard

import (
	"fmt"

	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of columns in a SalesMatrix and entries in a yearly series.
const MonthsPerYear = 12

// SalesMatrix holds sales per month of one year. Row i belongs to category i and
// column j to month j+1.
type SalesMatrix struct {
	categories []string
	rows       [][]decimal.Decimal
}

// NewSalesMatrix validates that there is exactly one 12-column row per category.
func NewSalesMatrix(categories []string, rows [][]decimal.Decimal) (SalesMatrix, error) {
	if len(categories) != len(rows) {
		return SalesMatrix{}, errs.NewValueIsInvalidErrorWithCause(
			"salesPerMonth",
			fmt.Errorf("%d categories for %d rows", len(categories), len(rows)),
		)
	}

	m := SalesMatrix{
		categories: append([]string(nil), categories...),
		rows:       make([][]decimal.Decimal, len(rows)),
	}

	for i, row := range rows {
		if len(row) != MonthsPerYear {
			return SalesMatrix{}, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("salesPerMonth[%d]", i), len(row), MonthsPerYear, MonthsPerYear,
			)
		}
		m.rows[i] = append([]decimal.Decimal(nil), row...)
	}

	return m, nil
}

// Categories returns the row labels.
func (m SalesMatrix) Categories() []string {
	return append([]string(nil), m.categories...)
}

// Row returns the 12 monthly values of row i.
func (m SalesMatrix) Row(i int) ([]decimal.Decimal, bool) {
	if i < 0 || i >= len(m.rows) {
		return nil, false
	}
	return append([]decimal.Decimal(nil), m.rows[i]...), true
}

// Rows returns a deep copy of all rows.
func (m SalesMatrix) Rows() [][]decimal.Decimal {
	rows := make([][]decimal.Decimal, len(m.rows))
	for i := range m.rows {
		rows[i], _ = m.Row(i)
	}
	return rows
}

func (m SalesMatrix) Len() int {
	return len(m.rows)
}
