package cmd

import (
	"context"
	"log/slog"

	httpadapter "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/kafka"
	"bakery/internal/adapters/out/memory"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/redislock"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"
	"bakery/internal/metrics"
	"bakery/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	locker     ports.OrderLocker
	publisher  ports.StateChangePublisher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	locker ports.OrderLocker,
	publisher ports.StateChangePublisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(cfg.Location()),
		locker:     locker,
		publisher:  publisher,
		logger:     logger,
		metrics:    m,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewChangeOrderStateCommandHandler(
		f,
		c.locker,
		services.NewOrderLifecycle(services.NewRolePolicy()),
		c.publisher,
		c.clock,
	)
	return commands.NewObservableChangeOrderStateCommandHandler(handler, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardHandler {
	builder := services.NewDashboardBuilder(c.cfg.Location(), services.DeliveryStatsOptions{
		CountProblemAsDue: c.cfg.CountProblemAsDue,
		NewOrdersWindow:   c.cfg.NewOrdersWindow,
	})
	handler := queries.NewGetDashboardQueryHandler(
		postgres.NewGormSnapshotProvider(c.gormDB, c.clock),
		builder,
		c.clock,
	)
	return queries.NewObservableGetDashboardQueryHandler(handler, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatesQueryHandler() queries.GetOrderStatesQueryHandler {
	return queries.NewGetOrderStatesQueryHandler()
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		ChangeOrderState: c.CreateChangeOrderStateCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		GetDashboard:     c.CreateGetDashboardQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrderStates:   c.CreateGetOrderStatesQueryHandler(),
		GetProducts:      c.CreateGetProductsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDashboardQueryHandler(), c.cfg.StatsJobSchedule, c.logger)
}

// NewOrderLocker returns a redis locker when REDIS_URL is set and an
// in-process locker otherwise. The returned func releases the connection.
func NewOrderLocker(ctx context.Context, cfg Config) (ports.OrderLocker, func() error, error) {
	if cfg.RedisURL == "" {
		return memory.NewOrderLocker(), func() error { return nil }, nil
	}

	rdb, err := redislock.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}

	return redislock.NewLocker(rdb, redislock.DefaultTTL), rdb.Close, nil
}

// NewStateChangePublisher returns a kafka publisher when KAFKA_BROKERS is set
// and a publisher that discards changes otherwise.
func NewStateChangePublisher(cfg Config) (ports.StateChangePublisher, func() error) {
	brokers := kafka.ParseBrokers(cfg.KafkaBrokers)
	if len(brokers) == 0 {
		return kafka.NoopPublisher{}, func() error { return nil }
	}

	publisher := kafka.NewPublisher(brokers, cfg.KafkaOrderStateChangedTopic)
	return publisher, publisher.Close
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
