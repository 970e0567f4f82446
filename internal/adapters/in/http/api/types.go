package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DeliveryStats defines model for DeliveryStats.
type DeliveryStats struct {
	DeliveredToday    int `json:"deliveredToday"`
	DueToday          int `json:"dueToday"`
	DueTomorrow       int `json:"dueTomorrow"`
	NotAvailableToday int `json:"notAvailableToday"`
	NewOrders         int `json:"newOrders"`
}

// CategorySales defines model for CategorySales.
type CategorySales struct {
	Category string   `json:"category"`
	Months   []string `json:"months"`
}

// ProductDelivery defines model for ProductDelivery.
type ProductDelivery struct {
	ProductId openapi_types.UUID `json:"productId"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	DeliveryStats       DeliveryStats     `json:"deliveryStats"`
	DeliveriesThisMonth []int             `json:"deliveriesThisMonth"`
	DeliveriesThisYear  []int             `json:"deliveriesThisYear"`
	SalesPerMonth       []CategorySales   `json:"salesPerMonth"`
	ProductDeliveries   []ProductDelivery `json:"productDeliveries"`
}

// OrderState defines model for OrderState.
type OrderState struct {
	Name           string   `json:"name"`
	DisplayName    string   `json:"displayName"`
	Terminal       bool     `json:"terminal"`
	AllowedTargets []string `json:"allowedTargets"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Customer string         `json:"customer"`
	DueDate  *time.Time     `json:"dueDate,omitempty"`
	Items    []NewOrderItem `json:"items"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
}

// StateChange defines model for StateChange.
type StateChange struct {
	OrderId *openapi_types.UUID `json:"orderId,omitempty"`
	From    string              `json:"from"`
	To      string              `json:"to"`
	At      time.Time           `json:"at"`
	Role    string              `json:"role"`
}

// Order defines model for Order.
type Order struct {
	Id               openapi_types.UUID `json:"id"`
	Customer         string             `json:"customer"`
	DueDate          *time.Time         `json:"dueDate,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	State            string             `json:"state"`
	StateDisplayName string             `json:"stateDisplayName"`
	Version          int                `json:"version"`
	Items            []OrderItem        `json:"items"`
	History          []StateChange      `json:"history"`
}

// ChangeOrderStateTargetState defines model for ChangeOrderState.TargetState.
type ChangeOrderStateTargetState string

// Defines values for ChangeOrderStateTargetState.
const (
	NEW       ChangeOrderStateTargetState = "NEW"
	CONFIRMED ChangeOrderStateTargetState = "CONFIRMED"
	READY     ChangeOrderStateTargetState = "READY"
	DELIVERED ChangeOrderStateTargetState = "DELIVERED"
	PROBLEM   ChangeOrderStateTargetState = "PROBLEM"
	CANCELLED ChangeOrderStateTargetState = "CANCELLED"
)

// ChangeOrderState defines model for ChangeOrderState.
type ChangeOrderState struct {
	TargetState ChangeOrderStateTargetState `json:"targetState"`
}

// Product defines model for Product.
type Product struct {
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Price    string             `json:"price"`
}

// GetDashboardParams defines parameters for GetDashboard.
type GetDashboardParams struct {
	At *time.Time `form:"at,omitempty" json:"at,omitempty"`
}

// ChangeOrderStateParams defines parameters for ChangeOrderState.
type ChangeOrderStateParams struct {
	XRole string `json:"X-Role"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderStateJSONRequestBody defines body for ChangeOrderState for application/json ContentType.
type ChangeOrderStateJSONRequestBody = ChangeOrderState
