// Package validation runs the declarative field rules attached to request
// models through `validate` struct tags and reports every violation at once.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violation names one broken rule. Field is the wire path of the offending
// value, for example "content.text" or "messages[0].destinations[0].to".
type Violation struct {
	Field string
	Rule  string
	Param string
}

func (v Violation) String() string {
	if v.Param == "" {
		return fmt.Sprintf("%s: %s", v.Field, v.Rule)
	}
	return fmt.Sprintf("%s: %s=%s", v.Field, v.Rule, v.Param)
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func instance() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(wireName)
		for tag, pattern := range patterns {
			pattern := pattern
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return pattern.MatchString(fl.Field().String())
			}); err != nil {
				panic(fmt.Sprintf("validation: register %s: %v", tag, err))
			}
		}
		engine = v
	})
	return engine
}

// wireName reports fields by their JSON key so violations line up with the
// field paths the remote API uses in its own validation errors.
func wireName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// Struct validates v and returns every violation found. A nil slice means v
// is valid. The error is reserved for inputs that cannot be validated at all.
func Struct(v any) ([]Violation, error) {
	if v == nil {
		return []Violation{{Field: "body", Rule: "required"}}, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return []Violation{{Field: "body", Rule: "required"}}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("validation: expected struct, got %s", rv.Kind())
	}

	err := instance().Struct(rv.Interface())
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validation: %w", err)
	}

	prefix := rv.Type().Name() + "."
	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{
			Field: strings.TrimPrefix(fe.Namespace(), prefix),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out, nil
}

// Var checks a single standalone value (a path parameter, for instance)
// against a tag expression and reports violations under the given name.
func Var(field string, value any, tag string) []Violation {
	err := instance().Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: field, Rule: err.Error()}}
	}
	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: field, Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
