package server

import (
	"github.com/go-playground/validator/v10"

	"brewfinder/internal/validation"
)

// structValidator plugs validator/v10 into Fiber's binder.
type structValidator struct {
	validate *validator.Validate
}

// newStructValidator registers the brewery_type tag, which accepts an
// empty value or one of breweryTypes.
func newStructValidator(breweryTypes []string) *structValidator {
	v := validator.New()
	_ = v.RegisterValidation("brewery_type", func(fl validator.FieldLevel) bool {
		return validation.ValidateBreweryType(fl.Field().String(), breweryTypes)
	})
	return &structValidator{validate: v}
}

// Validate implements fiber.StructValidator.
func (v *structValidator) Validate(out any) error {
	return v.validate.Struct(out)
}
