package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/asset-tracker/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")
)

// Field error messages.
const (
	MsgAssetIDRequired  = "Asset ID is required"
	MsgNameRequired     = "Name is required"
	MsgInvalidCategory  = "Invalid category"
	MsgInvalidStatus    = "Invalid status"
	MsgUsernameRequired = "Username is required"
	MsgPasswordRequired = "Password is required"
)

// ValidationError carries every rejected field of a single input.
// errors.Is(err, ErrValidation) holds for any *ValidationError.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// errOrNil returns e as an error only when at least one field was rejected.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldErrors extracts the field errors from err, or nil when err is not a
// validation failure.
func FieldErrors(err error) []models.FieldError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}
