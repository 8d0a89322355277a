package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxCountInputLength bounds raw count input. Normalization accepts any
// garbage, but there is no reason to carry kilobytes of it through binding.
const maxCountInputLength = 32

// RegisterCustomValidations wires dto-specific rules into gin's validator
// engine. Must be called once before the engine serves requests.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	return v.RegisterValidation("countinput", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxCountInputLength
	})
}
