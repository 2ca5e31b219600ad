package services

import (
	"context"
	"testing"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks for Dependencies ---

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// --- Tests ---

func TestCreateCustomer_Success(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := NewCustomerService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Customer")).Return(nil)

	customer, err := svc.Create(ctx, CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: strPtr("+15551234567"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", customer.Name)
	assert.Equal(t, "alice@example.com", customer.Email)
	mockRepo.AssertExpectations(t)
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := NewCustomerService(mockRepo)

	mockRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	_, err := svc.Create(context.Background(), CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.Error(t, err)
	svcErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindDuplicateEmail, svcErr.Kind)
	assert.Equal(t, "Email already exists", svcErr.Message)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCustomer_InvalidPhone(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := NewCustomerService(mockRepo)

	_, err := svc.Create(context.Background(), CustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: strPtr("abc"),
	})

	assert.Error(t, err)
	svcErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidFormat, svcErr.Kind)
	// Validation runs before the uniqueness check, so the repo is untouched.
	mockRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBulkCreateCustomers_PartialSuccess(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := NewCustomerService(mockRepo)

	mockRepo.On("ExistsByEmail", mock.Anything, "a@example.com").Return(false, nil)
	mockRepo.On("ExistsByEmail", mock.Anything, "b@example.com").Return(true, nil)
	mockRepo.On("ExistsByEmail", mock.Anything, "c@example.com").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Customer")).Return(nil)

	created, errs := svc.BulkCreate(context.Background(), []CustomerInput{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
		{Name: "C", Email: "c@example.com"},
	})

	assert.Len(t, created, 2)
	assert.Equal(t, "A", created[0].Name)
	assert.Equal(t, "C", created[1].Name)
	assert.Equal(t, []string{"Email already exists: b@example.com"}, errs)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestBulkCreateCustomers_BadPhoneDoesNotAbort(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	svc := NewCustomerService(mockRepo)

	mockRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Customer")).Return(nil)

	created, errs := svc.BulkCreate(context.Background(), []CustomerInput{
		{Name: "A", Email: "a@example.com", Phone: strPtr("nope")},
		{Name: "B", Email: "b@example.com"},
	})

	assert.Len(t, created, 1)
	assert.Equal(t, "B", created[0].Name)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "a@example.com")
}
