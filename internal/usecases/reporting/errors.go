package reporting

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Shivarajkushals/Dashboard/internal/domain"
)

var (
	ErrMissingDates = errors.New("from_date and to_date are required")
	ErrInvalidDates = errors.New("from_date and to_date must be valid dates (YYYY-MM-DD)")
)

var validate = validator.New()

// ValidateFilters exige from_date e to_date no formato YYYY-MM-DD
func ValidateFilters(filters domain.ReportFilters) error {
	err := validate.Struct(filters)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "erro ao validar filtros")
	}

	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "required" {
			return ErrMissingDates
		}
	}

	return ErrInvalidDates
}

// IsValidationError indica se o erro deve ser devolvido ao cliente como requisição inválida
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingDates) || errors.Is(err, ErrInvalidDates)
}
