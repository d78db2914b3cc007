package request

import (
	"sync"

	"rotaclick/internal/domain/pricing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator:
//   - cep: a Brazilian postal code, with or without mask
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("cep", validateCEP)
	})
}

func validateCEP(fl validator.FieldLevel) bool {
	_, err := pricing.NormalizeCEP(fl.Field().String())
	return err == nil
}
