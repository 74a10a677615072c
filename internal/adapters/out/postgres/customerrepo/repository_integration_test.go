package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/customerrepo"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.ID, _ any) {}

type GormCustomerRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *customerrepo.GormCustomerRepository
}

func (suite *GormCustomerRepositoryTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.repo = customerrepo.NewGormCustomerRepository(db, mockAggregateTracker{})
}

func (suite *GormCustomerRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormCustomerRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormCustomerRepositoryTestSuite) mustID(s string) kernel.ID {
	id, err := kernel.IDFromString(s)
	suite.Require().NoError(err)
	return id
}

func (suite *GormCustomerRepositoryTestSuite) newCustomer(id, email string) *customer.Customer {
	c, err := customer.NewCustomer(
		suite.mustID(id), "John Doe", email, "+1234567890", "123 Main St")
	suite.Require().NoError(err)
	return c
}

func (suite *GormCustomerRepositoryTestSuite) TestAddAndGet_RoundTripsProfile() {
	ctx := context.Background()

	saved := suite.newCustomer("c1", "john@example.com")
	suite.Require().NoError(suite.repo.Add(ctx, saved))

	loaded, err := suite.repo.Get(ctx, suite.mustID("c1"))
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(saved))
	suite.Equal("John Doe", loaded.Name())
	suite.Equal("john@example.com", loaded.Email())
	suite.Equal("+1234567890", loaded.Phone())
	suite.Equal("123 Main St", loaded.Address())
}

func (suite *GormCustomerRepositoryTestSuite) TestGet_MissingCustomer_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), suite.mustID("nobody"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormCustomerRepositoryTestSuite) TestAdd_DuplicateID_ReturnsDuplicate() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("c1", "john@example.com")))

	err := suite.repo.Add(ctx, suite.newCustomer("c1", "other@example.com"))
	suite.Require().ErrorIs(err, errs.ErrDuplicate)
}

func (suite *GormCustomerRepositoryTestSuite) TestAdd_DuplicateEmail_ReturnsDuplicate() {
	ctx := context.Background()

	suite.Require().NoError(suite.repo.Add(ctx, suite.newCustomer("c1", "john@example.com")))

	err := suite.repo.Add(ctx, suite.newCustomer("c2", "john@example.com"))
	suite.Require().ErrorIs(err, errs.ErrDuplicate)

	_, err = suite.repo.Get(ctx, suite.mustID("c2"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGormCustomerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormCustomerRepositoryTestSuite))
}
