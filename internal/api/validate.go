package api

import (
	"encoding/json"
	"errors"
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors carry the JSON name the caller sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// "required" on a Value means present and not empty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		val, ok := field.Interface().(Value)
		if !ok {
			return nil
		}

		return !val.Empty()
	}, Value{})

	return v
}

// decodeObject decodes a body that must be a non-empty JSON object into dst and
// validates it.
func decodeObject(body []byte, dst any) error {
	var v Value

	err := json.Unmarshal(body, &v)
	if err != nil || v.Kind() != KindObject || v.Empty() {
		return BadRequest(msgInvalidJSON)
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return BadRequest(msgInvalidJSON)
	}

	return validateStruct(dst)
}

// decodeOptional decodes body into dst when it is a JSON object and leaves dst
// untouched otherwise.
func decodeOptional(body []byte, dst any) {
	var v Value

	if json.Unmarshal(body, &v) != nil || v.Kind() != KindObject {
		return
	}

	_ = json.Unmarshal(body, dst)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}

	return BadRequest(msgMissingParams + strings.Join(missing, ", "))
}

var tags = regexp.MustCompile(`<[^>]*>`)

// sanitize trims s, strips markup and escapes HTML special characters.
func sanitize(s string) string {
	return html.EscapeString(tags.ReplaceAllString(strings.TrimSpace(s), ""))
}
