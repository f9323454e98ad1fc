package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/asset-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They double as the "field" value of reported [models.FieldError]s.
const (
	FieldAssetID  = "asset_id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldStatus   = "status"

	FieldUsername = "username"
	FieldPassword = "password"
)

var (
	defaultAssetFields       = []string{FieldAssetID, FieldName, FieldCategory, FieldStatus}
	defaultCredentialsFields = []string{FieldUsername, FieldPassword}
)

// InputValidator implements [Validator] for asset write fields, raw asset
// requests and login credentials. Every rejected field is reported; the
// result is a *ValidationError or nil.
type InputValidator struct{}

// NewInputValidator constructs a new InputValidator and returns it as the
// Validator interface.
func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types (value and pointer):
//   - models.AssetFields
//   - models.AssetRequest
//   - models.Credentials
//
// Returns ErrUnsupportedType for anything else and ErrUnknownField when a
// requested field does not belong to the type.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AssetFields:
		return v.validateAssetFields(value, fields...)
	case *models.AssetFields:
		return v.validateAssetFields(*value, fields...)

	case models.AssetRequest:
		_, err := ParseAsset(value)
		return err
	case *models.AssetRequest:
		_, err := ParseAsset(*value)
		return err

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateAssetFields(f models.AssetFields, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultAssetFields
	}

	vErr := &ValidationError{}
	for _, field := range fields {
		switch field {
		case FieldAssetID:
			if strings.TrimSpace(f.AssetID) == "" {
				vErr.add(FieldAssetID, MsgAssetIDRequired)
			}
		case FieldName:
			if strings.TrimSpace(f.Name) == "" {
				vErr.add(FieldName, MsgNameRequired)
			}
		case FieldCategory:
			if !f.Category.IsValid() {
				vErr.add(FieldCategory, MsgInvalidCategory)
			}
		case FieldStatus:
			if !f.Status.IsValid() {
				vErr.add(FieldStatus, MsgInvalidStatus)
			}
		default:
			return ErrUnknownField
		}
	}

	return vErr.errOrNil()
}

func (v *InputValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultCredentialsFields
	}

	vErr := &ValidationError{}
	for _, field := range fields {
		switch field {
		case FieldUsername:
			if c.Username == "" {
				vErr.add(FieldUsername, MsgUsernameRequired)
			}
		case FieldPassword:
			if c.Password == "" {
				vErr.add(FieldPassword, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return vErr.errOrNil()
}

// ParseAsset converts a raw asset request into typed write fields.
//
// Text fields are trimmed, the category alias "AccessCard" is normalized and
// a blank assigned_to becomes nil. All field errors are collected into one
// *ValidationError. The Faulty/assigned_to rule is not checked here.
func ParseAsset(req models.AssetRequest) (models.AssetFields, error) {
	vErr := &ValidationError{}

	fields := models.AssetFields{
		AssetID: strings.TrimSpace(req.AssetID),
		Name:    strings.TrimSpace(req.Name),
	}

	if fields.AssetID == "" {
		vErr.add(FieldAssetID, MsgAssetIDRequired)
	}
	if fields.Name == "" {
		vErr.add(FieldName, MsgNameRequired)
	}

	category, ok := models.ParseCategory(strings.TrimSpace(req.Category))
	if !ok {
		vErr.add(FieldCategory, MsgInvalidCategory)
	}
	fields.Category = category

	status, ok := models.ParseStatus(strings.TrimSpace(req.Status))
	if !ok {
		vErr.add(FieldStatus, MsgInvalidStatus)
	}
	fields.Status = status

	fields.AssignedTo = normalizeAssignee(req.AssignedTo)

	if err := vErr.errOrNil(); err != nil {
		return models.AssetFields{}, err
	}
	return fields, nil
}

func normalizeAssignee(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseAssetFilter builds a listing filter from raw query values.
//
// Values are trimmed and the category alias is normalized. Unknown category
// or status values are kept verbatim so that the caller can tell them apart
// from an absent filter; they never match a stored asset.
func ParseAssetFilter(category, status, search string) models.AssetFilter {
	filter := models.AssetFilter{Search: strings.TrimSpace(search)}

	if category = strings.TrimSpace(category); category != "" {
		if c, ok := models.ParseCategory(category); ok {
			filter.Category = c
		} else {
			filter.Category = models.Category(category)
		}
	}

	if status = strings.TrimSpace(status); status != "" {
		filter.Status = models.Status(status)
	}

	return filter
}
