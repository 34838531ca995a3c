package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(testOrder))
	suite.Equal(testOrder.PartnerID(), loaded.PartnerID())
	suite.Equal(order.Pending, loaded.Status())
	suite.True(loaded.TotalAmount().IsEqual(testOrder.TotalAmount()))
	suite.Len(loaded.Items(), 2)
	suite.False(loaded.IsCreditReserved())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndReservation() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.TransitionTo(order.Approved))
	reservedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(testOrder.MarkCreditReserved(reservedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, loaded.Status())
	suite.Require().NotNil(loaded.CreditReservedAt())
	suite.True(loaded.CreditReservedAt().Equal(reservedAt))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByStatus() {
	ctx := context.Background()

	pending := suite.createTestOrder()
	approved := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(approved.TransitionTo(order.Approved))
	suite.Require().NoError(suite.repository.Add(ctx, approved))

	pendingOrders, err := suite.repository.GetByStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOrders, 1)
	suite.True(pendingOrders[0].IsEqual(pending))

	shippedOrders, err := suite.repository.GetByStatus(ctx, order.Shipped)
	suite.Require().NoError(err)
	suite.Empty(shippedOrders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCreatedBetween() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	now := time.Now().UTC()

	within, err := suite.repository.GetByCreatedBetween(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(within, 1)
	suite.True(within[0].IsEqual(testOrder))

	outside, err := suite.repository.GetByCreatedBetween(ctx, now.Add(-2*time.Hour), now.Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(outside)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price1, err := kernel.NewMoneyFromString("19.99")
	suite.Require().NoError(err)
	price2, err := kernel.NewMoneyFromString("5.00")
	suite.Require().NoError(err)

	item1, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, price1)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, price2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item1, item2})
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
