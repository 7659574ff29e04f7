package userrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &userrepo.UserDTO{})
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "users"))

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = userrepo.NewGormUserRepository(suite.db, tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(name string, role user.Role) *user.User {
	var address *kernel.Address
	if role == user.Merchant {
		a, err := kernel.NewAddress("5 Market St")
		suite.Require().NoError(err)
		address = &a
	}

	u, err := user.NewUser(kernel.NewUUID(), name, "555-0100", role, address, "hash", time.Now())
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	merchant := suite.newUser("bakery", user.Merchant)
	suite.Require().NoError(suite.repository.Add(ctx, merchant))

	loaded, err := suite.repository.Get(ctx, merchant.ID())
	suite.Require().NoError(err)
	suite.Equal("bakery", loaded.Name())
	suite.Equal(user.Merchant, loaded.Role())
	suite.Require().NotNil(loaded.Address())
	suite.Equal("5 Market St", loaded.Address().String())
	suite.Nil(loaded.Availability())
	suite.Equal("hash", loaded.PasswordHash())

	byName, err := suite.repository.GetByName(ctx, "bakery")
	suite.Require().NoError(err)
	suite.True(byName.IsEqual(merchant))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateNameAcrossRoles() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("sam", user.Customer)))

	err := suite.repository.Add(ctx, suite.newUser("sam", user.Rider))

	suite.Require().ErrorIs(err, ports.ErrAlreadyExists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Availability() {
	ctx := context.Background()
	rider := suite.newUser("bob", user.Rider)
	suite.Require().NoError(suite.repository.Add(ctx, rider))

	suite.Require().NoError(rider.SetAvailability(user.Idle))
	suite.Require().NoError(suite.repository.Update(ctx, rider))

	loaded, err := suite.repository.Get(ctx, rider.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsIdleRider())
}

func (suite *UserRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByName(ctx, "nobody")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, suite.newUser("ghost", user.Rider))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
