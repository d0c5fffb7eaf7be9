package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds a validator whose error fields are reported by JSON tag name,
// so verdicts line up with the wire format the client edits.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterEnum registers a tag that requires an exact, case-sensitive match
// against the allowed set. Used for option lists whose values contain spaces
// and therefore cannot be expressed with the oneof tag.
func RegisterEnum(v *validator.Validate, tag string, allowed []string) {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return set[fl.Field().String()]
	})
}
