package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var registerOnce sync.Once

// RegisterJSONTagNames makes gin's validator report fields by their json
// name, so messages read "salon_id is required".
func RegisterJSONTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonTagName)
	})
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Describe converts a bind error into a ValidationError naming the first
// offending field.
func Describe(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Field()

		switch fe.Tag() {
		case "required":
			return httperr.ErrRequired(field)
		case "email":
			return httperr.ErrInvalid(field, field+" must be a valid email address")
		case "min":
			return httperr.ErrInvalid(field, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			return httperr.ErrInvalid(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "oneof":
			return httperr.ErrInvalid(field, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			return httperr.ErrInvalid(field, field+" is invalid")
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return httperr.ErrInvalid(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String()))
	}

	if errors.Is(err, io.EOF) {
		return httperr.ErrInvalid("", "request body is required")
	}

	return httperr.ErrInvalid("", "invalid request body")
}
