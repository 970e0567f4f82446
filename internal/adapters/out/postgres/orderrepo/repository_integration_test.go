package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// Seeded by the migrations.
var (
	baguetteID = kernel.MustUUIDFromString("6f1c2a10-3b7e-4c55-9a51-0b1f5d2e8a01")
	eclairID   = kernel.MustUUIDFromString("6f1c2a10-3b7e-4c55-9a51-0b1f5d2e8a06")
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	now        time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = orderrepo.NewGormOrderRepository(database.DB)
	suite.now = time.Date(2026, time.April, 15, 10, 30, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	baguettes, err := order.NewItem(baguetteID, 12)
	suite.Require().NoError(err)
	eclairs, err := order.NewItem(eclairID, 4)
	suite.Require().NoError(err)

	due := suite.now.Add(24 * time.Hour)
	o, err := order.NewOrder(kernel.NewUUID(), "Café Rive", &due, suite.now, []order.Item{baguettes, eclairs})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresAggregate() {
	ctx := suite.T().Context()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.Equal("Café Rive", got.Customer())
	suite.Equal(order.New, got.State())
	suite.Equal(0, got.Version())
	suite.True(suite.now.Equal(got.CreatedAt()))

	due, ok := got.DueDate()
	suite.Require().True(ok)
	suite.True(suite.now.Add(24 * time.Hour).Equal(due))

	items := got.Items()
	suite.Require().Len(items, 2)
	suite.Equal(baguetteID, items[0].ProductID())
	suite.Equal(12, items[0].Quantity())
	suite.Equal(eclairID, items[1].ProductID())
	suite.Empty(got.History())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WithoutDueDate() {
	ctx := suite.T().Context()
	item, err := order.NewItem(baguetteID, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), "Walk-in", nil, suite.now, []order.Item{item})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, ok := got.DueDate()
	suite.False(ok)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(suite.T().Context(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStateHistoryAndVersion() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := o.ChangeState(order.Confirmed, order.Barista, suite.now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, stored.State())
	suite.Equal(1, stored.Version())

	_, err = stored.ChangeState(order.Ready, order.Baker, suite.now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, got.State())
	suite.Equal(2, got.Version())

	history := got.History()
	suite.Require().Len(history, 2)
	suite.Equal(order.New, history[0].From())
	suite.Equal(order.Confirmed, history[0].To())
	suite.Equal(order.Barista, history[0].Role())
	suite.Equal(order.Confirmed, history[1].From())
	suite.Equal(order.Ready, history[1].To())
	suite.Equal(order.Baker, history[1].Role())
	suite.True(suite.now.Add(time.Hour).Equal(history[1].At()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModification() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	_, err = first.ChangeState(order.Confirmed, order.Barista, suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.ChangeState(order.Cancelled, order.Barista, suite.now)
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.State())
	suite.Len(got.History(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newOrder()

	err := suite.repository.Update(suite.T().Context(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsOrdersOldestFirst() {
	ctx := suite.T().Context()
	older := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, older))

	suite.now = suite.now.Add(time.Hour)
	newer := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	orders, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(older.IsEqual(orders[0]))
	suite.True(newer.IsEqual(orders[1]))
	suite.Len(orders[0].Items(), 2)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
