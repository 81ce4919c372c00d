package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&outboxrepo.MessageDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers, orders, outbox").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_AssignTick_StoresAggregatesAndOutboxAtomically() {
	ctx := context.Background()

	pendingOrder := suite.newOrder(6, 6)
	freeCourier := suite.newCourier("Alice", courier.Car(), 5, 6)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, pendingOrder))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, freeCourier))

	suite.Require().NoError(freeCourier.Assign(pendingOrder.ID(), pendingOrder.Location()))
	suite.Require().NoError(pendingOrder.Assign(freeCourier.ID()))

	suite.Require().NoError(uow.OrderRepository().Update(ctx, pendingOrder))
	suite.Require().NoError(uow.CourierRepository().Update(ctx, freeCourier))

	suite.Require().NoError(uow.Commit(ctx))

	// Both aggregates and the OrderAssigned event landed together.
	readUoW := suite.factory.Create()
	loadedOrder, err := readUoW.OrderRepository().Get(ctx, pendingOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, loadedOrder.Status())

	loadedCourier, err := readUoW.CourierRepository().Get(ctx, freeCourier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.Busy, loadedCourier.Status())

	messages, err := outboxrepo.NewGormOutboxRepository(suite.db).GetUnhandled(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(order.OrderAssignedEventName, messages[0].EventType)

	var payload struct {
		OrderID   string `json:"orderId"`
		CourierID string `json:"courierId"`
	}
	suite.Require().NoError(json.Unmarshal(messages[0].Payload, &payload))
	suite.Equal(pendingOrder.ID().String(), payload.OrderID)
	suite.Equal(freeCourier.ID().String(), payload.CourierID)

	// A successful commit clears the aggregate's event buffer.
	suite.Empty(pendingOrder.GetDomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAggregatesAndOutbox() {
	ctx := context.Background()

	pendingOrder := suite.newOrder(3, 3)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, pendingOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)

	messages, err := outboxrepo.NewGormOutboxRepository(suite.db).GetUnhandled(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsNoOp() {
	ctx := context.Background()

	pendingOrder := suite.newOrder(2, 9)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, pendingOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_CompletedOrder_StoresCompletionEvent() {
	ctx := context.Background()

	pendingOrder := suite.newOrder(6, 6)
	suite.Require().NoError(pendingOrder.Assign(kernel.NewUUID()))
	pendingOrder.ClearDomainEvents()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, pendingOrder))
	suite.Require().NoError(pendingOrder.Complete())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, pendingOrder))
	suite.Require().NoError(uow.Commit(ctx))

	messages, err := outboxrepo.NewGormOutboxRepository(suite.db).GetUnhandled(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(order.OrderCompletedEventName, messages[0].EventType)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(x, y kernel.Coordinate) *order.Order {
	location, err := kernel.NewLocation(x, y)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), location)
	suite.Require().NoError(err)

	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newCourier(
	name string, transport courier.Transport, x, y kernel.Coordinate,
) *courier.Courier {
	location, err := kernel.NewLocation(x, y)
	suite.Require().NoError(err)

	c, err := courier.NewCourier(kernel.NewUUID(), name, transport, location)
	suite.Require().NoError(err)

	return c
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
