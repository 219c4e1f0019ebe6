package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-circuit-records/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// MaxPasswordLength is the longest password bcrypt can hash.
const MaxPasswordLength = 72

// categoryPattern allows a single path segment of letters, digits,
// underscores and dashes. Dots are excluded so "." and ".." cannot pass.
var categoryPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Category is the name of an upload category, e.g. "minutes" or "reports".
// It becomes a directory name or key prefix in the file storage.
type Category string

// RequestValidator implements [Validator] for every request body of the API.
// Both value and pointer forms of each supported model are accepted.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.MemberInput
//   - models.FinancialEntryInput
//   - models.AnnouncementInput
//   - Category
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(_ context.Context, obj any) error {
	var err error

	switch value := obj.(type) {
	case models.RegisterRequest:
		err = validateRegisterRequest(&value)
	case *models.RegisterRequest:
		err = validateRegisterRequest(value)
	case models.LoginRequest:
		err = validateLoginRequest(&value)
	case *models.LoginRequest:
		err = validateLoginRequest(value)
	case models.MemberInput:
		err = validateMemberInput(&value)
	case *models.MemberInput:
		err = validateMemberInput(value)
	case models.FinancialEntryInput:
		err = validateFinancialEntryInput(&value)
	case *models.FinancialEntryInput:
		err = validateFinancialEntryInput(value)
	case models.AnnouncementInput:
		err = validateAnnouncementInput(&value)
	case *models.AnnouncementInput:
		err = validateAnnouncementInput(value)
	case Category:
		err = validateCategory(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func validateRegisterRequest(r *models.RegisterRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, MaxPasswordLength)),
		validation.Field(&r.FullName, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&r.Role, validation.Required, validation.By(validRole)),
		validation.Field(&r.Society, validation.NilOrNotEmpty, validation.By(validSociety)),
		validation.Field(&r.Organization, validation.NilOrNotEmpty, validation.By(validOrganization)),
	)
}

func validateLoginRequest(r *models.LoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func validateMemberInput(m *models.MemberInput) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.FullName, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&m.DateOfBirth, validation.By(requiredTimestamp)),
		validation.Field(&m.Gender, validation.Required),
		validation.Field(&m.ResidentialAddress, validation.Required),
		validation.Field(&m.EmailAddress, is.Email),
		validation.Field(&m.Society, validation.Required, validation.By(validSociety)),
	)
}

func validateFinancialEntryInput(f *models.FinancialEntryInput) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Society, validation.Required, validation.By(validSociety)),
		validation.Field(&f.Date, validation.By(requiredTimestamp)),
	)
}

func validateAnnouncementInput(a *models.AnnouncementInput) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&a.Content, validation.Required),
	)
}

func validateCategory(c Category) error {
	err := validation.Validate(string(c),
		validation.Required,
		validation.Length(1, 64),
		validation.Match(categoryPattern).Error("must contain only letters, digits, '_' or '-'"),
	)
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}
	return nil
}

func validRole(value any) error {
	v, _ := validation.Indirect(value)
	role, _ := v.(models.Role)
	if role == "" || role.Valid() {
		return nil
	}
	return errors.New("must be a valid role")
}

func validSociety(value any) error {
	v, _ := validation.Indirect(value)
	society, _ := v.(models.Society)
	if society == "" || society.Valid() {
		return nil
	}
	return errors.New("must be a valid society")
}

func validOrganization(value any) error {
	v, _ := validation.Indirect(value)
	organization, _ := v.(models.Organization)
	if organization == "" || organization.Valid() {
		return nil
	}
	return errors.New("must be a valid organization")
}

func requiredTimestamp(value any) error {
	ts, _ := value.(models.Timestamp)
	if ts.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}
