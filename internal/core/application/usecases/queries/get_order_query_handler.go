package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads order details straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID        uuid.UUID
	Customer  string
	DueDate   *time.Time
	CreatedAt time.Time
	State     string
	Version   int
}

type orderItemRow struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
}

type stateChangeRow struct {
	FromState string
	ToState   string
	ChangedAt time.Time
	Role      string
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	var rows []orderRow
	if err := db.Raw(`
		SELECT id, customer, due_date, created_at, state, version
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Scan(&rows).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", id.String())
	}
	row := rows[0]

	var items []orderItemRow
	if err := db.Raw(`
		SELECT i.product_id, p.name AS product_name, i.quantity
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.position
	`, id.Bytes()).Scan(&items).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}

	var history []stateChangeRow
	if err := db.Raw(`
		SELECT from_state, to_state, changed_at, role
		FROM order_state_changes
		WHERE order_id = ?
		ORDER BY seq
	`, id.Bytes()).Scan(&history).Error; err != nil {
		return GetOrderQueryResponse{}, err
	}

	state, err := order.ParseState(row.State)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:               id,
		Customer:         row.Customer,
		DueDate:          row.DueDate,
		CreatedAt:        row.CreatedAt,
		State:            state.String(),
		StateDisplayName: state.DisplayName(),
		Version:          row.Version,
		Items:            make([]OrderItemResponse, 0, len(items)),
		History:          make([]StateChangeResponse, 0, len(history)),
	}

	for _, item := range items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.Items = append(response.Items, OrderItemResponse{
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	for _, change := range history {
		response.History = append(response.History, StateChangeResponse{
			From: change.FromState,
			To:   change.ToState,
			At:   change.ChangedAt,
			Role: change.Role,
		})
	}

	return response, nil
}
