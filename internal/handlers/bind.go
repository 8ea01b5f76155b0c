package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"favorites_api/internal/apperrors"
	"favorites_api/internal/responses"
	"favorites_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	bodyRequired  = "You need to specify the request body as a json object"
	malformedBody = "Malformed json body"
)

var bindingOnce sync.Once

// ConfigureBinding makes gin reject unknown JSON fields and report
// validation failures by JSON field name.
func ConfigureBinding() {
	bindingOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
				if name == "" || name == "-" {
					return fld.Name
				}
				return name
			})
		}
	})
}

// bindJSON decodes and validates a request body that must be a JSON object.
func bindJSON(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return apperrors.NewValidation(bodyRequired)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return apperrors.NewValidation(bodyRequired)
	}
	if !singleValue(body) {
		return apperrors.NewValidation(malformedBody)
	}

	if err := binding.JSON.BindBody(body, obj); err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return apperrors.NewValidation("You need to specify the " + fe.Field())
		}
		return apperrors.NewValidation(fmt.Sprintf("Invalid value for %s", fe.Field()))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidation(fmt.Sprintf("Invalid value for %s", typeErr.Field))
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return apperrors.NewValidation("Unknown field " + field)
	}

	return apperrors.NewValidation(malformedBody)
}

// singleValue reports whether body holds exactly one JSON value with nothing
// but whitespace after it. gin's decoder stops after the first value.
func singleValue(body []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(body))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return false
	}
	return len(bytes.TrimSpace(body[dec.InputOffset():])) == 0
}

// pathID reads an integer path parameter. Anything else does not name a
// resource, so it is answered like an unmatched route.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		responses.NotFound(c)
		return 0, false
	}
	return id, true
}
