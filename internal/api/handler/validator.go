package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormError lists every rejected field of a session form, keyed by the
// field's JSON name.
type FormError struct {
	Fields map[string]string
	order  []string
}

func (e *FormError) Error() string {
	msgs := make([]string, 0, len(e.order))
	for _, f := range e.order {
		msgs = append(msgs, e.Fields[f])
	}
	return strings.Join(msgs, "; ")
}

// formValidator lets Echo check the session forms through c.Validate.
type formValidator struct {
	v *validator.Validate
}

// NewValidator reports fields by their JSON names, the names the forms use.
func NewValidator() *formValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return &formValidator{v: v}
}

func (fv *formValidator) Validate(i any) error {
	err := fv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fe := &FormError{Fields: make(map[string]string, len(ve))}
	for _, e := range ve {
		if _, dup := fe.Fields[e.Field()]; dup {
			continue
		}
		fe.Fields[e.Field()] = fieldMessage(e)
		fe.order = append(fe.order, e.Field())
	}
	return fe
}

// fieldMessage covers the tags used by the login, register and profile forms.
func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
