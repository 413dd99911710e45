package usecase

import (
	"errors"

	"safari-booking/internal/data/repository"
	"safari-booking/pkg/utils"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("resource already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistrationDisabled = errors.New("registration is disabled without a database")
)

// ValidationError is a client mistake. Message is the first violation, Fields
// holds one message per offending field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(violations []utils.FieldViolation) *ValidationError {
	return &ValidationError{
		Message: violations[0].Message,
		Fields:  utils.ViolationMap(violations),
	}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

func validate(req any) error {
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		return newValidationError(violations)
	}
	return nil
}

// translateRepoError lifts repository sentinels into service sentinels.
func translateRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	}
	return err
}
