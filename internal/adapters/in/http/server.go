package http

import (
	"context"
	"net/http"
	"time"

	"bakery/internal/adapters/in/http/api"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrderHandler registers new orders.
type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

// GetOrderHandler reads one order with its items and history.
type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// GetOrderStatesHandler lists the lifecycle states.
type GetOrderStatesHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatesQuery) ([]queries.GetOrderStatesQueryResponse, error)
}

// GetProductsHandler lists the product catalog.
type GetProductsHandler interface {
	Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.GetProductsQueryResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ChangeOrderState commands.ChangeOrderStateHandler
	CreateOrder      CreateOrderHandler

	GetDashboard   queries.GetDashboardHandler
	GetOrder       GetOrderHandler
	GetOrderStates GetOrderStatesHandler
	GetProducts    GetProductsHandler
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	changeOrderStateHandler commands.ChangeOrderStateHandler
	createOrderHandler      CreateOrderHandler

	getDashboardHandler   queries.GetDashboardHandler
	getOrderHandler       GetOrderHandler
	getOrderStatesHandler GetOrderStatesHandler
	getProductsHandler    GetProductsHandler
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{
		changeOrderStateHandler: h.ChangeOrderState,
		createOrderHandler:      h.CreateOrder,
		getDashboardHandler:     h.GetDashboard,
		getOrderHandler:         h.GetOrder,
		getOrderStatesHandler:   h.GetOrderStates,
		getProductsHandler:      h.GetProducts,
	}
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context, params api.GetDashboardParams) error {
	data, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery(params.At))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboard(data))
}

// GetOrderStates handles GET /api/v1/orders/states.
func (s *Server) GetOrderStates(ctx echo.Context) error {
	states, err := s.getOrderStatesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]api.OrderState, len(states))
	for i, st := range states {
		response[i] = api.OrderState{
			Name:           st.Name,
			DisplayName:    st.DisplayName,
			Terminal:       st.Terminal,
			AllowedTargets: st.AllowedTargets,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body api.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLine, len(body.Items))
	for i, item := range body.Items {
		productID, err := kernel.UUIDFromBytes(item.ProductId[:])
		if err != nil {
			return writeError(ctx, err)
		}
		lines[i] = commands.OrderLine{ProductID: productID, Quantity: item.Quantity}
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, body.Customer, body.DueDate, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.OrderCreated{Id: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// ChangeOrderState handles POST /api/v1/orders/{orderId}/state.
// A role header that names no known role carries no permissions and is
// answered like any other denied transition.
func (s *Server) ChangeOrderState(ctx echo.Context, orderId openapi_types.UUID, params api.ChangeOrderStateParams) error {
	var body api.ChangeOrderStateJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, api.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	role, err := order.ParseRole(params.XRole)
	if err != nil {
		return ctx.JSON(http.StatusForbidden, api.Error{
			Code:    http.StatusForbidden,
			Message: "Unknown role " + params.XRole,
		})
	}

	target, err := order.ParseState(string(body.TargetState))
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStateCommand(id, target, role)
	if err != nil {
		return writeError(ctx, err)
	}

	change, err := s.changeOrderStateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStateChange(change))
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]api.Product, len(products))
	for i, p := range products {
		response[i] = api.Product{
			Id:       p.ID.Bytes(),
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
