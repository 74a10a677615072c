package postgres_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE customers, restaurants, menu_items, couriers, carts, cart_items, orders, order_items CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) mustID(s string) kernel.ID {
	id, err := kernel.IDFromString(s)
	suite.Require().NoError(err)
	return id
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, err := customer.NewCustomer(
		suite.mustID("c1"), "John Doe", "john@example.com", "+1234567890", "123 Main St")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	rider, err := courier.NewCourier(suite.mustID("courier1"), "Mike Wilson", "+1234567892", "bike")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CourierRepository().Add(ctx, rider))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	_, err = verify.CustomerRepository().Get(ctx, suite.mustID("c1"))
	suite.Require().NoError(err)
	_, err = verify.CourierRepository().Get(ctx, suite.mustID("courier1"))
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c, err := customer.NewCustomer(
		suite.mustID("c1"), "John Doe", "john@example.com", "+1234567890", "123 Main St")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	li, err := order.NewLineItem(suite.mustID("m1"), "Margherita Pizza", 12.99, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(
		order.NextID(), suite.mustID("c1"), suite.mustID("r1"),
		"123 Main St", []order.LineItem{li}, "30-40 min")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.CustomerRepository().Get(ctx, suite.mustID("c1"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = verify.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestRollbackAfterCommit_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
