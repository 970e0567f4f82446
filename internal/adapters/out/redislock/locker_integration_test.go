package redislock_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/redislock"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type LockerIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
}

func (suite *LockerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	rdb, err := redislock.Connect(ctx, "redis://"+endpoint)
	suite.Require().NoError(err)
	suite.rdb = rdb
}

func (suite *LockerIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.Require().NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LockerIntegrationTestSuite) TestLock_SecondHolderIsRejectedUntilUnlock() {
	ctx := suite.T().Context()
	locker := redislock.NewLocker(suite.rdb, time.Minute)
	id := kernel.NewUUID()

	unlock, err := locker.Lock(ctx, id)
	suite.Require().NoError(err)

	_, err = locker.Lock(ctx, id)
	suite.Require().ErrorIs(err, ports.ErrLockNotAcquired)

	suite.Require().NoError(unlock(ctx))

	unlockAgain, err := locker.Lock(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(unlockAgain(ctx))
}

func (suite *LockerIntegrationTestSuite) TestLock_DifferentOrdersAreIndependent() {
	ctx := suite.T().Context()
	locker := redislock.NewLocker(suite.rdb, time.Minute)

	unlockA, err := locker.Lock(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	unlockB, err := locker.Lock(ctx, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(unlockA(ctx))
	suite.Require().NoError(unlockB(ctx))
}

func (suite *LockerIntegrationTestSuite) TestUnlock_DoesNotReleaseLockTakenAfterExpiry() {
	ctx := suite.T().Context()
	id := kernel.NewUUID()

	staleUnlock, err := redislock.NewLocker(suite.rdb, 50*time.Millisecond).Lock(ctx, id)
	suite.Require().NoError(err)

	time.Sleep(150 * time.Millisecond)

	locker := redislock.NewLocker(suite.rdb, time.Minute)
	unlock, err := locker.Lock(ctx, id)
	suite.Require().NoError(err)

	suite.Require().NoError(staleUnlock(ctx))

	_, err = locker.Lock(ctx, id)
	suite.Require().ErrorIs(err, ports.ErrLockNotAcquired)
	suite.Require().NoError(unlock(ctx))
}

func TestLockerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LockerIntegrationTestSuite))
}
