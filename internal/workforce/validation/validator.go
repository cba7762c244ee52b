// Package validation evaluates the declarative field constraints of the
// domain models and turns failures into violations API clients can act on.
//
// Constraints are declared with `validate` struct tags. Every field is
// checked, so one call reports all failing fields at once; within a single
// field the first failing rule wins, which keeps a blank required field to a
// single violation.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/go-playground/validator/v10"
)

// ReferenceTag marks a required reference to another entity.
const ReferenceTag = "reference"

// Validator checks domain models against their declared constraints.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the phone and reference rules registered.
// It panics only if the rule registration itself is broken.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(PhoneTag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return IsPhoneNumber(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register %s rule: %v", PhoneTag, err))
	}
	v.RegisterAlias(ReferenceTag, "required")

	return &Validator{validate: v}
}

// Struct validates entity and returns one violation per failing field.
// The error is non-nil only when entity is not a struct or struct pointer.
func (v *Validator) Struct(entity any) ([]e.Violation, error) {
	err := v.validate.Struct(entity)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate %T: %w", entity, err)
	}

	violations := make([]e.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, toViolation(fe))
	}
	return violations, nil
}

func toViolation(fe validator.FieldError) e.Violation {
	value := ""
	if fe.Tag() != ReferenceTag {
		value = fmt.Sprint(fe.Value())
	}
	return e.Violation{
		Field:   fe.Field(),
		Value:   value,
		Kind:    kindOf(fe.Tag()),
		Message: messageFor(fe.Namespace(), fe.Tag(), fe.Field(), value),
	}
}

func kindOf(tag string) e.Kind {
	switch tag {
	case "required":
		return e.KindRequired
	case "min", "max", "len":
		return e.KindLength
	case PhoneTag:
		return e.KindPhoneFormat
	case ReferenceTag:
		return e.KindMissingReference
	default:
		return e.Kind(tag)
	}
}

// MissingReference builds the violation reported when field points at an
// entity that does not exist.
func MissingReference(field, value, message string) e.Violation {
	return e.Violation{
		Field:   field,
		Value:   value,
		Kind:    e.KindMissingReference,
		Message: message,
	}
}
