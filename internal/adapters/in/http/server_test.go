package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bakery/internal/adapters/in/http/api"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChangeOrderStateHandler struct{ mock.Mock }

func (m *MockChangeOrderStateHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStateCommand) (order.StateChange, error) {
	args := m.Called(ctx, cmd)
	change, _ := args.Get(0).(order.StateChange)
	return change, args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetDashboardHandler struct{ mock.Mock }

func (m *MockGetDashboardHandler) Handle(ctx context.Context, query queries.GetDashboardQuery) (*dashboard.Data, error) {
	args := m.Called(ctx, query)
	data, _ := args.Get(0).(*dashboard.Data)
	return data, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).(queries.GetOrderQueryResponse)
	return response, args.Error(1)
}

type MockGetProductsHandler struct{ mock.Mock }

func (m *MockGetProductsHandler) Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.GetProductsQueryResponse, error) {
	args := m.Called(ctx, query)
	products, _ := args.Get(0).([]queries.GetProductsQueryResponse)
	return products, args.Error(1)
}

var (
	orderID   = kernel.MustUUIDFromString("0d3f7a52-41c4-4f0e-9d55-3c8a51e7b901")
	productID = kernel.MustUUIDFromString("6f1c2a10-3b7e-4c55-9a51-0b1f5d2e8a04")
	changedAt = time.Date(2026, time.April, 15, 10, 30, 0, 0, time.UTC)
)

type fixture struct {
	e           *echo.Echo
	changeState *MockChangeOrderStateHandler
	createOrder *MockCreateOrderHandler
	dashboard   *MockGetDashboardHandler
	getOrder    *MockGetOrderHandler
	products    *MockGetProductsHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		e:           echo.New(),
		changeState: &MockChangeOrderStateHandler{},
		createOrder: &MockCreateOrderHandler{},
		dashboard:   &MockGetDashboardHandler{},
		getOrder:    &MockGetOrderHandler{},
		products:    &MockGetProductsHandler{},
	}

	server := NewServer(Handlers{
		ChangeOrderState: f.changeState,
		CreateOrder:      f.createOrder,
		GetDashboard:     f.dashboard,
		GetOrder:         f.getOrder,
		GetOrderStates:   queries.NewGetOrderStatesQueryHandler(),
		GetProducts:      f.products,
	})
	require.NoError(t, Register(f.e, server))

	t.Cleanup(func() {
		f.changeState.AssertExpectations(t)
		f.createOrder.AssertExpectations(t)
		f.dashboard.AssertExpectations(t)
		f.getOrder.AssertExpectations(t)
		f.products.AssertExpectations(t)
	})

	return f
}

func (f *fixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.Error {
	t.Helper()

	var e api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))

	return e
}

func TestServer_ChangeOrderState(t *testing.T) {
	path := "/api/v1/orders/" + orderID.String() + "/state"

	t.Run("should return the recorded state change", func(t *testing.T) {
		f := newFixture(t)
		change := order.RestoreStateChange(orderID, order.Ready, order.Delivered, changedAt, order.Barista)
		f.changeState.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStateCommand) bool {
			return cmd.OrderID().IsEqual(orderID) && cmd.Target() == order.Delivered && cmd.Role() == order.Barista
		})).Return(change, nil).Once()

		rec := f.do(http.MethodPost, path, `{"targetState":"DELIVERED"}`, map[string]string{"X-Role": "barista"})

		require.Equal(t, http.StatusOK, rec.Code)
		var got api.StateChange
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "READY", got.From)
		assert.Equal(t, "DELIVERED", got.To)
		assert.Equal(t, "barista", got.Role)
		assert.True(t, changedAt.Equal(got.At))
		require.NotNil(t, got.OrderId)
		assert.Equal(t, orderID.Bytes(), *got.OrderId)
	})

	errorCases := []struct {
		name string
		err  error
		code int
	}{
		{"should answer 403 when the role may not perform the transition", errs.NewForbiddenError("baker", "READY", "DELIVERED"), http.StatusForbidden},
		{"should answer 409 for an illegal transition", errs.NewIllegalTransitionError("DELIVERED", "NEW"), http.StatusConflict},
		{"should answer 409 when the order changed concurrently", errs.NewConcurrentModificationError("orderId", orderID), http.StatusConflict},
		{"should answer 404 for an unknown order", errs.NewObjectNotFoundError("orderId", orderID), http.StatusNotFound},
		{"should answer 500 for unexpected failures", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.changeState.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := f.do(http.MethodPost, path, `{"targetState":"DELIVERED"}`, map[string]string{"X-Role": "baker"})

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Code)
		})
	}

	t.Run("should answer 403 for an unknown role without calling the use case", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, path, `{"targetState":"CONFIRMED"}`, map[string]string{"X-Role": "cashier"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		f.changeState.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 400 when the role header is missing", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, path, `{"targetState":"CONFIRMED"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 400 for an unknown target state", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, path, `{"targetState":"BAKING"}`, map[string]string{"X-Role": "admin"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 400 for a malformed order id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/not-a-uuid/state", `{"targetState":"CONFIRMED"}`,
			map[string]string{"X-Role": "admin"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create the order and return its id", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			lines := cmd.Lines()
			return cmd.Customer() == "Café Lumière" && cmd.DueDate() != nil &&
				len(lines) == 1 && lines[0].ProductID.IsEqual(productID) && lines[0].Quantity == 40
		})).Return(nil).Once()

		body := `{"customer":"Café Lumière","dueDate":"2026-04-16T06:00:00Z",` +
			`"items":[{"productId":"` + productID.String() + `","quantity":40}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got api.OrderCreated
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotEqual(t, [16]byte{}, [16]byte(got.Id))
	})

	t.Run("should answer 400 when no items are given", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"customer":"Café Lumière","items":[]}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 404 for an unknown product", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("productId", productID)).Once()

		body := `{"customer":"Café Lumière","items":[{"productId":"` + productID.String() + `","quantity":1}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetDashboard(t *testing.T) {
	t.Run("should render the dashboard", func(t *testing.T) {
		f := newFixture(t)
		f.dashboard.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDashboardQuery) bool {
			_, replay := q.At()
			return !replay
		})).Return(sampleDashboard(t), nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/dashboard", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got api.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, api.DeliveryStats{
			DeliveredToday: 2, DueToday: 1, DueTomorrow: 1, NotAvailableToday: 0, NewOrders: 3,
		}, got.DeliveryStats)
		assert.Len(t, got.DeliveriesThisMonth, 30)
		assert.Len(t, got.DeliveriesThisYear, 12)
		require.Len(t, got.SalesPerMonth, 1)
		assert.Equal(t, "Pastry", got.SalesPerMonth[0].Category)
		assert.Equal(t, "64.00", got.SalesPerMonth[0].Months[3])
		require.Len(t, got.ProductDeliveries, 1)
		assert.Equal(t, 40, got.ProductDeliveries[0].Quantity)
	})

	t.Run("should pass the replay instant to the query", func(t *testing.T) {
		f := newFixture(t)
		f.dashboard.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDashboardQuery) bool {
			at, replay := q.At()
			return replay && at.Equal(changedAt)
		})).Return(sampleDashboard(t), nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/dashboard?at=2026-04-15T10:30:00Z", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should answer 500 when aggregation fails", func(t *testing.T) {
		f := newFixture(t)
		cause := errs.NewObjectNotFoundError("productId", productID)
		f.dashboard.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewAggregationFailedErrorWithCause("sales", cause)).Once()

		rec := f.do(http.MethodGet, "/api/v1/dashboard", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
	})
}

func TestServer_GetOrderStates(t *testing.T) {
	t.Run("should list the states in lifecycle order", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/orders/states", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []api.OrderState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 6)
		assert.Equal(t, "NEW", got[0].Name)
		assert.Equal(t, []string{"CONFIRMED", "CANCELLED", "PROBLEM"}, got[0].AllowedTargets)
		assert.True(t, got[3].Terminal)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("should render the order with history", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.OrderID().IsEqual(orderID)
		})).Return(queries.GetOrderQueryResponse{
			ID:               orderID,
			Customer:         "Café Lumière",
			CreatedAt:        changedAt.Add(-time.Hour),
			State:            "CONFIRMED",
			StateDisplayName: "Confirmed",
			Version:          1,
			Items:            []queries.OrderItemResponse{{ProductID: productID, ProductName: "Croissant", Quantity: 40}},
			History:          []queries.StateChangeResponse{{From: "NEW", To: "CONFIRMED", At: changedAt, Role: "barista"}},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got api.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "CONFIRMED", got.State)
		assert.Nil(t, got.DueDate)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Croissant", got.Items[0].ProductName)
		require.Len(t, got.History, 1)
		assert.Nil(t, got.History[0].OrderId)
	})

	t.Run("should answer 404 for an unknown order", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

		rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetProducts(t *testing.T) {
	t.Run("should render prices with two decimals", func(t *testing.T) {
		f := newFixture(t)
		f.products.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetProductsQueryResponse{
			{ID: productID, Name: "Croissant", Category: "Pastry", Price: decimal.RequireFromString("1.6")},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/products", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []api.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "1.60", got[0].Price)
	})
}

func TestStatusOf(t *testing.T) {
	t.Run("should map value errors to 400", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, statusOf(errs.NewValueIsRequiredError("customer")))
		assert.Equal(t, http.StatusBadRequest, statusOf(errs.NewValueIsInvalidError("state")))
		assert.Equal(t, http.StatusBadRequest, statusOf(errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)))
	})

	t.Run("should prefer aggregation failure over its cause", func(t *testing.T) {
		err := errs.NewAggregationFailedErrorWithCause("productDeliveries", errs.NewObjectNotFoundError("productId", productID))

		assert.Equal(t, http.StatusInternalServerError, statusOf(err))
	})
}

func sampleDashboard(t *testing.T) *dashboard.Data {
	t.Helper()

	stats, err := dashboard.NewDeliveryStats(2, 1, 1, 0, 3)
	require.NoError(t, err)

	row := make([]decimal.Decimal, dashboard.MonthsPerYear)
	for i := range row {
		row[i] = decimal.Zero
	}
	row[3] = decimal.NewFromInt(64)
	sales, err := dashboard.NewSalesMatrix([]string{"Pastry"}, [][]decimal.Decimal{row})
	require.NoError(t, err)

	deliveries, err := dashboard.NewProductDeliveries([]dashboard.ProductDelivery{
		{ProductID: productID, Name: "Croissant", Quantity: 40},
	})
	require.NoError(t, err)

	data, err := dashboard.NewData(stats, make([]int, 30), make([]int, dashboard.MonthsPerYear), sales, deliveries)
	require.NoError(t, err)

	return data
}
