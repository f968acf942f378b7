package postgres_test

import (
	"context"
	"testing"
	"time"

	"lastmile/internal/adapters/out/postgres"
	"lastmile/internal/adapters/out/postgres/auditrepo"
	"lastmile/internal/core/domain/model/audit"
	"lastmile/internal/core/domain/model/incident"
	"lastmile/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries against a
// real PostgreSQL container.
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

	suite.Require().NoError(postgres.AutoMigrate(db))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE drivers, orders, incidents, escalations, conversations, users, merchants, packaging_feedback, tool_calls RESTART IDENTITY",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	aggregate, err := order.NewOrder(0, 10, 20, "12 Market St", "34 Lake Rd", []string{"Dosa"})
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	id, err := uow.OrderRepository().Add(ctx, suite.newOrder())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, restored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.OrderRepository().Add(ctx, suite.newOrder())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Table("orders").Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetOldestDispatchable_PicksLowestID() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	first, err := uow.OrderRepository().Add(ctx, suite.newOrder())
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().Add(ctx, suite.newOrder())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	oldest, err := suite.factory.Create().OrderRepository().GetOldestDispatchable(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(oldest)
	suite.Equal(first, oldest.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetOldestDispatchable_Empty_ReturnsNil() {
	oldest, err := suite.factory.Create().OrderRepository().GetOldestDispatchable(context.Background())

	suite.Require().NoError(err)
	suite.Nil(oldest)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConversationRepository_PersistsOnCommit() {
	ctx := context.Background()

	record, err := incident.NewConversation(
		0,
		nil,
		"customer: driver never arrived",
		[]byte(`{"channel":"chat"}`),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	id, err := uow.ConversationRepository().Add(ctx, record)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Positive(id)
	var count int64
	suite.Require().NoError(suite.db.Table("conversations").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestToolCallAudit_WritesOutsideTransactions() {
	ctx := context.Background()

	record, err := audit.NewToolCall(
		uuid.New(),
		"assign_driver",
		[]byte(`{"orderId":1}`),
		[]byte(`{"ok":true}`),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	repo := auditrepo.NewGormToolCallRepository(suite.db)
	suite.Require().NoError(repo.Add(ctx, record))

	var count int64
	suite.Require().NoError(suite.db.Table("tool_calls").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
