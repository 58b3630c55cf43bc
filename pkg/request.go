package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names, so clients see e.g. "sets[1].reps"
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
	return v
}

// RequestError is a client error found while decoding or validating a
// request body. Its message is safe to return to the caller.
type RequestError struct {
	Field string
	Msg   string
}

func (e *RequestError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Msg)
}

func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// DecodeJSON decodes the body into dst and validates it by its `validate` tags.
func DecodeJSON(body io.Reader, dst any) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return decodeError(err)
	}
	return ValidateStruct(dst)
}

func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	return &RequestError{
		Field: fieldPath(fe.Namespace()),
		Msg:   describeTag(fe),
	}
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed on " + fe.Tag()
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return &RequestError{
			Field: typeErr.Field,
			Msg:   fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	case errors.As(err, &syntaxErr):
		return &RequestError{Msg: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)}
	case errors.Is(err, io.EOF):
		return &RequestError{Msg: "request body is empty"}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &RequestError{Msg: "malformed JSON"}
	default:
		return &RequestError{Msg: "invalid request body"}
	}
}

// PathIntVar parses the named mux route variable as a positive integer.
func PathIntVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, &RequestError{Field: name, Msg: "is required"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, &RequestError{Field: name, Msg: "must be a positive integer"}
	}
	return v, nil
}

// QueryInt reads an optional integer query param, returning def when absent.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &RequestError{Field: name, Msg: "must be an integer"}
	}
	return v, nil
}
