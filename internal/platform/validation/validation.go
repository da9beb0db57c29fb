package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to its failed rules. Field names come from the
// `json` tag so they match the stored column.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v and returns Errors, or nil when v is valid.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), describe(fe))
	}
	return out
}

// Merge combines struct validation with extra rule checks.
func Merge(err error, extra Errors) error {
	if len(extra) == 0 {
		return err
	}
	if err == nil {
		return extra
	}
	var base Errors
	if !stderrors.As(err, &base) {
		return err
	}
	for field, messages := range extra {
		base[field] = append(base[field], messages...)
	}
	return base
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "url":
		return "must be a valid url"
	case "numeric":
		return "must be numeric"
	default:
		return "failed " + fe.Tag()
	}
}
