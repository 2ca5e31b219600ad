package repositories

import (
	"context"
	"testing"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CustomerRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo CustomerRepository
}

func (s *CustomerRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewGormCustomerRepository(s.db)
}

func TestCustomerRepository(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryTestSuite))
}

func (s *CustomerRepositoryTestSuite) TestCreateAndFindByEmail() {
	ctx := context.Background()
	phone := "555-123-4567"
	customer := &models.Customer{
		Name:  "Repo Test Customer",
		Email: "test.repo@example.com",
		Phone: &phone,
	}

	err := s.repo.Create(ctx, customer)
	s.NoError(err, "Creating customer should not produce an error")
	s.NotEqual(uuid.Nil, customer.ID, "Create should assign an id")

	found, err := s.repo.FindByEmail(ctx, "test.repo@example.com")
	s.NoError(err, "Finding an existing customer should not produce an error")
	s.Equal(customer.ID, found.ID, "Found customer ID should match created customer ID")
	s.Equal("Repo Test Customer", found.Name)

	_, err = s.repo.FindByEmail(ctx, "notfound@example.com")
	s.Error(err, "Finding a non-existent customer should produce an error")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *CustomerRepositoryTestSuite) TestUniqueEmailConstraint() {
	ctx := context.Background()

	err := s.repo.Create(ctx, &models.Customer{Name: "First", Email: "dup@example.com"})
	s.NoError(err)

	err = s.repo.Create(ctx, &models.Customer{Name: "Second", Email: "dup@example.com"})
	s.Error(err, "Second insert with the same email must fail")
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *CustomerRepositoryTestSuite) TestExistsByEmail() {
	ctx := context.Background()

	exists, err := s.repo.ExistsByEmail(ctx, "nobody@example.com")
	s.NoError(err)
	s.False(exists)

	s.NoError(s.repo.Create(ctx, &models.Customer{Name: "Alice", Email: "alice@example.com"}))

	exists, err = s.repo.ExistsByEmail(ctx, "alice@example.com")
	s.NoError(err)
	s.True(exists)
}

func (s *CustomerRepositoryTestSuite) TestFindByID() {
	ctx := context.Background()
	customer := &models.Customer{Name: "Alice", Email: "alice@example.com"}
	s.NoError(s.repo.Create(ctx, customer))

	found, err := s.repo.FindByID(ctx, customer.ID)
	s.NoError(err)
	s.Equal("alice@example.com", found.Email)
}
