// Package orderrepo persists order aggregates in the orders, order_items and
// order_state_changes tables and maps them to and from the domain model.
//
// Storage rules:
//   - Items keep their position so an order reads back with its lines in the
//     order they were taken
//   - History rows are keyed by (order_id, seq) and never rewritten; Update
//     inserts the whole history with ON CONFLICT DO NOTHING, so only new
//     changes land
//   - The version column is the optimistic concurrency counter. Update only
//     matches the row whose version equals Order.Version() and increments it;
//     no match means the order is gone or was changed by someone else
//   - GetAll returns orders by creation time with items and history preloaded
//     in position and seq order, which is what the dashboard replay relies on
//
// Unknown state names read from storage fail the load instead of
// producing a half-restored aggregate.
package orderrepo

import (
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table together with its child rows.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Customer  string     `gorm:"not null"`
	DueDate   *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"`
	State     string     `gorm:"not null;index"`
	Version   int        `gorm:"not null;default:0"`

	Items   []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StateChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the line order.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StateChangeDTO is one entry of the order history. Seq is the index of the
// change in the history and never changes once written.
type StateChangeDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey;autoIncrement:false"`
	FromState string    `gorm:"not null"`
	ToState   string    `gorm:"not null;index:idx_order_state_changes_to_state,priority:1"`
	ChangedAt time.Time `gorm:"not null;index:idx_order_state_changes_to_state,priority:2"`
	Role      string    `gorm:"not null"`
}

func (StateChangeDTO) TableName() string {
	return "order_state_changes"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	var dueDate *time.Time
	if due, ok := o.DueDate(); ok {
		dueDate = &due
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   id,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
		})
	}

	history := o.History()
	historyDTOs := make([]StateChangeDTO, 0, len(history))
	for i, change := range history {
		historyDTOs = append(historyDTOs, StateChangeDTO{
			OrderID:   id,
			Seq:       i,
			FromState: change.From().String(),
			ToState:   change.To().String(),
			ChangedAt: change.At(),
			Role:      change.Role().String(),
		})
	}

	return OrderDTO{
		ID:        id,
		Customer:  o.Customer(),
		DueDate:   dueDate,
		CreatedAt: o.CreatedAt(),
		State:     o.State().String(),
		Version:   o.Version(),
		Items:     itemDTOs,
		History:   historyDTOs,
	}
}

// toDomain restores the aggregate. Items and history are expected in position
// and seq order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state, err := order.ParseState(dto.State)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, err)
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, fmt.Errorf("order %s item %d: %w", id, itemDTO.Position, idErr)
		}
		items = append(items, order.RestoreItem(productID, itemDTO.Quantity))
	}

	history := make([]order.StateChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		from, fromErr := order.ParseState(changeDTO.FromState)
		if fromErr != nil {
			return nil, fmt.Errorf("order %s history %d: %w", id, changeDTO.Seq, fromErr)
		}
		to, toErr := order.ParseState(changeDTO.ToState)
		if toErr != nil {
			return nil, fmt.Errorf("order %s history %d: %w", id, changeDTO.Seq, toErr)
		}
		history = append(history, order.RestoreStateChange(id, from, to, changeDTO.ChangedAt, order.Role(changeDTO.Role)))
	}

	return order.RestoreOrder(id, dto.Customer, dto.DueDate, dto.CreatedAt, items, state, history, dto.Version)
}
