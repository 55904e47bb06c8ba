package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/sangem-ordering/repository"
)

var (
	ErrNotFound             = repository.ErrNotFound
	ErrForbidden            = errors.New("you do not have permission for this record")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidPartnerStatus = errors.New("unknown delivery partner status")
	ErrNoPartner            = errors.New("no delivery partner found for this login")
	ErrOrderClosed          = errors.New("order is already delivered or cancelled")
	ErrPartnerUnavailable   = errors.New("delivery partner is not active")
	ErrEmailTaken           = errors.New("email is already registered")
)

// ValidationError rejects input before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
