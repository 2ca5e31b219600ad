package services

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Accepts "+" followed by 10-15 digits, or NNN-NNN-NNNN.
var phoneRegex = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic("failed to register phone validation: " + err.Error())
	}
}

// CustomerInput carries the fields of a createCustomer request.
type CustomerInput struct {
	Name  string  `validate:"required"`
	Email string  `validate:"required"`
	Phone *string `validate:"omitempty,phone"`
}

// ValidateCustomer checks a customer input before persistence. It returns
// the first failure as a typed error.
func ValidateCustomer(in CustomerInput) *Error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewError(KindInternal, "Validation failed", err)
	}

	for _, fieldErr := range validationErrs {
		switch fieldErr.Field() {
		case "Name":
			return NewError(KindInvalidValue, "Name is required", nil)
		case "Email":
			return NewError(KindInvalidValue, "Email is required", nil)
		case "Phone":
			return NewError(KindInvalidFormat, "Phone number must be in the format +1234567890 or 123-456-7890", nil)
		}
	}
	return NewError(KindInternal, "Validation failed", err)
}
