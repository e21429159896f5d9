package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrDuplicateHandle = errors.New("user ID already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrRecordNotFound  = errors.New("test record not found")
	ErrNotStudent      = errors.New("only student accounts own test records")
	ErrUnknownHandle   = errors.New("user ID not found")
	ErrWrongSecret     = errors.New("invalid password")
)

// ValidationError reports the first offending field of a submission along
// with the violated constraint (required, min, max, datetime) and its limit.
type ValidationError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Limit      string `json:"limit,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Limit != "" {
		return fmt.Sprintf("field %s failed constraint %s=%s", e.Field, e.Constraint, e.Limit)
	}
	return fmt.Sprintf("field %s failed constraint %s", e.Field, e.Constraint)
}

// asValidationError converts a validator error into the domain type.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Limit:      fe.Param(),
		}
	}
	return err
}
