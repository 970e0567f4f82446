// Package api holds the HTTP contract of the bakery API: the OpenAPI
// document, its request and response models and the echo routing that binds
// path, query and header parameters before calling a ServerInterface.
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Dashboard statistics
	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context, params GetDashboardParams) error
	// Register a new order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Lifecycle states with display names and allowed successors
	// (GET /api/v1/orders/states)
	GetOrderStates(ctx echo.Context) error
	// Order details with history
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// Move an order to another lifecycle state
	// (POST /api/v1/orders/{orderId}/state)
	ChangeOrderState(ctx echo.Context, orderId openapi_types.UUID, params ChangeOrderStateParams) error
	// Product catalog
	// (GET /api/v1/products)
	GetProducts(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	var params GetDashboardParams

	err := runtime.BindQueryParameter("form", true, false, "at", ctx.QueryParams(), &params.At)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter at: %s", err))
	}

	return w.Handler.GetDashboard(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrderStates converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStates(ctx echo.Context) error {
	return w.Handler.GetOrderStates(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId)
}

// ChangeOrderState converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderState(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var params ChangeOrderStateParams

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-Role")]
	if !found {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Role is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Role, got %d", n))
	}

	err = runtime.BindStyledParameterWithOptions("simple", "X-Role", valueList[0], &params.XRole,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Role: %s", err))
	}

	return w.Handler.ChangeOrderState(ctx, orderId, params)
}

// GetProducts converts echo context to params.
func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	return w.Handler.GetProducts(ctx)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return orderId, nil
}

// EchoRouter is the subset of echo routing used to register handlers.
// Both *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/dashboard", wrapper.GetDashboard)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/states", wrapper.GetOrderStates)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/state", wrapper.ChangeOrderState)
	router.GET(baseURL+"/api/v1/products", wrapper.GetProducts)
}
