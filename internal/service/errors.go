package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/delight/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials is returned by Login for any unknown user, wrong
	// password or inactive account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a rejected write: a uniqueness or field constraint
// violation. Field names the offending request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var verr ValidationError
	return errors.As(err, &verr)
}

func cleanName(field, name string, maxLength int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid(field, "this field is required")
	}
	if len([]rune(name)) > maxLength {
		return "", invalid(field, "ensure this value has at most %d characters", maxLength)
	}
	return name, nil
}

func checkDecimal(field string, d decimal.Decimal, spec models.DecimalSpec) error {
	if err := spec.Check(d); err != nil {
		return invalid(field, "%s", err.Error())
	}
	return nil
}

func parseUnit(choice, custom string) (models.Unit, error) {
	u, err := models.ParseUnit(choice, custom)
	if err != nil {
		return models.Unit{}, invalid("unit", "%s", err.Error())
	}
	return u, nil
}

// mergeUnit applies a partial unit update to current. Setting only the
// choice drops custom text unless the choice is "other"; setting only custom
// text switches to a custom unit, or clears a custom unit when empty.
func mergeUnit(current models.Unit, unit, custom *string) (models.Unit, error) {
	choice, text := string(current.Choice()), current.Custom()
	switch {
	case unit != nil && custom != nil:
		choice, text = *unit, *custom
	case unit != nil:
		choice = *unit
		if models.UnitChoice(choice) != models.UnitOther {
			text = ""
		}
	case custom != nil:
		text = *custom
		if text != "" || current.Kind() == models.UnitKindCustom {
			choice = ""
		}
	}
	return parseUnit(choice, text)
}

// translateError maps storage errors onto the service error taxonomy. dup is
// returned for unique key violations that slipped past the pre-checks.
func translateError(err error, dup error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && dup != nil:
		return dup
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return invalid("reference", "referenced record does not exist")
	default:
		return err
	}
}
