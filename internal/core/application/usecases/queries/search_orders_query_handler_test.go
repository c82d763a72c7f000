package queries_test

import (
	"context"
	"testing"
	"time"

	"cherry/internal/adapters/out/postgres/orderrepo"
	"cherry/internal/core/application/usecases/queries"
	"cherry/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ int64, _ any) {}

type SearchOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.SearchOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *SearchOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewSearchOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *SearchOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SearchOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *SearchOrdersQueryHandlerTestSuite) addOrder(name, phone, mallOrderNo string) *order.Order {
	recipient, err := order.NewRecipient(name, phone, "某地")
	suite.Require().NoError(err)
	item, err := order.NewItem("考拉车厘子", "32-34mm", 3)
	suite.Require().NoError(err)
	newOrder, err := order.NewOrder(mallOrderNo, recipient, []order.Item{item})
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), newOrder)
	suite.Require().NoError(err)
	return newOrder
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	suite.addOrder("李四", "13900002222", "M200")

	query, err := queries.NewSearchOrdersQuery("张三", "13800001111")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_ExactMatchOnly() {
	suite.addOrder("张三", "13800001111", "M100")
	suite.addOrder("张三", "13900002222", "M200") // same name, other phone
	suite.addOrder("张三三", "13800001111", "M300") // other name, same phone

	query, err := queries.NewSearchOrdersQuery("张三", "13800001111")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("M100", result[0].MallOrderNo)
	suite.Equal(order.Pending, result[0].Status)
	suite.Empty(result[0].TrackingNumber)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_MultipleOrdersNewestFirst() {
	first := suite.addOrder("张三", "13800001111", "M100")
	second := suite.addOrder("张三", "13800001111", "M200")

	// Repo stamps both within the same second; spread them out so the
	// ordering is deterministic.
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", 1700000000, first.ID()).Error)
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", 1700000100, second.ID()).Error)

	query, err := queries.NewSearchOrdersQuery("张三", "13800001111")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("M200", result[0].MallOrderNo)
	suite.Equal("M100", result[1].MallOrderNo)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_TrackingNumberSurfaces() {
	shipped := suite.addOrder("张三", "13800001111", "M100")
	suite.Require().NoError(shipped.ChangeStatus(order.Shipped))
	suite.Require().NoError(shipped.AssignTracking("SF1234567890"))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), shipped))

	query, err := queries.NewSearchOrdersQuery("张三", "13800001111")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Shipped, result[0].Status)
	suite.Equal("SF1234567890", result[0].TrackingNumber)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.SearchOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewSearchOrdersQuery constructor")
}

func TestSearchOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchOrdersQueryHandlerTestSuite))
}
