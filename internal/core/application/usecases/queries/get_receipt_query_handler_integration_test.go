package queries_test

import (
	"context"
	"testing"
	"time"

	"completion/internal/adapters/out/postgres/receiptrepo"
	"completion/internal/core/application/usecases/queries"
	"completion/internal/core/domain/model/receipt"
	"completion/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlerIntegrationTestSuite exercises the read side against a real
// database: receipts written through the repository must come back through
// the raw-SQL read model, and the health probe must see the live pool.
type QueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlerIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&receiptrepo.ReceiptDTO{}))
}

func (suite *QueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE receipts").Error)
}

func (suite *QueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetReceipt_RoundTrip() {
	ctx := context.Background()
	repository := receiptrepo.NewGormReceiptRepository(suite.db)

	delivered := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	stored, err := receipt.NewReceipt("order-1", "cust-1", 25.00, &delivered)
	suite.Require().NoError(err)
	suite.Require().NoError(repository.Add(ctx, stored))

	query, err := queries.NewGetReceiptQuery(stored.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetReceiptQueryHandler(suite.db)
	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(stored.ID(), response.ReceiptID)
	suite.Equal("order-1", response.OrderID)
	suite.Equal("cust-1", response.CustomerID)
	suite.Equal(25.00, response.OrderTotal)
	suite.Equal(2.50, response.TaxAmount)
	suite.Equal(1.25, response.DeliveryFee)
	suite.Equal(receipt.StatusCompleted, response.Status)
	suite.Require().NotNil(response.DeliveryTime)
	suite.True(delivered.Equal(response.DeliveryTime.UTC()))
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetReceipt_Missing_ReportsNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetReceiptQuery("RECEIPT-missing")
	suite.Require().NoError(err)

	handler := queries.NewGetReceiptQueryHandler(suite.db)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetReceipt_UnconstructedQueryRejected() {
	ctx := context.Background()

	handler := queries.NewGetReceiptQueryHandler(suite.db)
	var query queries.GetReceiptQuery
	_, err := handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, queries.ErrGetReceiptQueryIsNotConstructed)
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetHealth_LivePool() {
	ctx := context.Background()

	handler := queries.NewGetHealthQueryHandler(suite.db)
	response, err := handler.Handle(ctx, queries.NewGetHealthQuery())
	suite.Require().NoError(err)

	suite.True(response.DatabaseReachable)
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetHealth_NoPool() {
	ctx := context.Background()

	handler := queries.NewGetHealthQueryHandler(nil)
	response, err := handler.Handle(ctx, queries.NewGetHealthQuery())
	suite.Require().NoError(err)

	suite.False(response.DatabaseReachable)
}

func TestQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlerIntegrationTestSuite))
}
