package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	analysisVO "lotledger/internal/domain/analysis/value_objects"
	lotVO "lotledger/internal/domain/lot/value_objects"
)

// Custom binding validations for domain values, so malformed requests are
// rejected at the door with a 400 instead of deeper in the use case.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("conclusion", func(fl validator.FieldLevel) bool {
		_, err := analysisVO.ParseConclusion(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("lotstatus", func(fl validator.FieldLevel) bool {
		_, err := lotVO.ParseStatus(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})
}
