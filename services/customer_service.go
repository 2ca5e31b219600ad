package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"
	repositories "github.com/Y-A-Dawit/alx-backend-graphql-crm/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create validates and persists a single customer. The first validation
// failure aborts the whole mutation with nothing written.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	if verr := ValidateCustomer(in); verr != nil {
		return nil, verr
	}

	exists, err := s.customerRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		zap.L().Error("Failed to check email existence", zap.String("email", in.Email), zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create customer", err)
	}
	if exists {
		return nil, NewError(KindDuplicateEmail, "Email already exists", nil)
	}

	customer := &models.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		// Two concurrent creates can both pass the existence check; the
		// unique index on email settles the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, NewError(KindDuplicateEmail, "Email already exists", err)
		}
		zap.L().Error("Failed to create customer", zap.String("email", in.Email), zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create customer", err)
	}

	return customer, nil
}

// BulkCreate processes each input independently: a failed entry is
// recorded as an error string and later entries still run. There is no
// batch transaction, so successes are never rolled back. Callers must
// inspect both return slices.
func (s *CustomerService) BulkCreate(ctx context.Context, inputs []CustomerInput) ([]*models.Customer, []string) {
	created := make([]*models.Customer, 0, len(inputs))
	var errs []string

	for _, in := range inputs {
		customer, err := s.Create(ctx, in)
		if err != nil {
			var svcErr *Error
			if errors.As(err, &svcErr) && svcErr.Kind == KindDuplicateEmail {
				errs = append(errs, fmt.Sprintf("Email already exists: %s", in.Email))
			} else {
				errs = append(errs, fmt.Sprintf("%s: %s", in.Email, err.Error()))
			}
			continue
		}
		created = append(created, customer)
	}

	return created, errs
}
