package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	msgRequired    = "Required"
	msgInvalid     = "Invalid input"
	msgInvalidJSON = "Invalid JSON body"
	msgInvalidID   = "Invalid id"
)

// ValidationError is answered with 400. Field is the dot joined JSON path of
// the offending value, empty when the body as a whole is broken.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

// Validator checks request structs and reports the first failing field by its JSON name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator using json tag names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Struct validates s. It returns a *ValidationError or nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: msgInvalid}
	}

	fe := fieldErrs[0]

	return &ValidationError{
		Message: message(fe),
		Field:   fieldPath(fe.Namespace()),
	}
}

// fieldPath drops the struct name from a namespace like "GameInput.imageUrl".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

func message(fe validator.FieldError) string {
	numeric := isNumeric(fe.Kind())

	switch fe.Tag() {
	case "required":
		return msgRequired
	case "min", "gte":
		if numeric {
			return "Number must be greater than or equal to " + fe.Param()
		}

		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max", "lte":
		if numeric {
			return "Number must be less than or equal to " + fe.Param()
		}

		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	default:
		return msgInvalid
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// BindJSON decodes the request body into v and validates it. An empty body
// decodes as an empty object.
func (v *Validator) BindJSON(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{
				Message: fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
				Field:   typeErr.Field,
			}
		}

		return &ValidationError{Message: msgInvalidJSON}
	}

	return v.Struct(out)
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch {
	case t.Kind() == reflect.String:
		return "string"
	case t.Kind() == reflect.Bool:
		return "boolean"
	case isNumeric(t.Kind()):
		return "number"
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// ParseID reads the numeric :id route parameter.
func ParseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &ValidationError{Message: msgInvalidID, Field: "id"}
	}

	return id, nil
}
