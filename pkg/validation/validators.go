package validation

import (
	"social-workflow-web/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New returns a validator with every custom tag registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance.
// The vocabulary tags read the same table the pages render from.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("business_type", ValidBusinessType)
	_ = v.RegisterValidation("goal", ValidGoal)
	_ = v.RegisterValidation("platform", ValidPlatform)
}

// ValidBusinessType validates a single-select business type code
func ValidBusinessType(fl validator.FieldLevel) bool {
	return domain.BusinessType(fl.Field().String()).IsValid()
}

// ValidGoal validates one entry of the goals set
func ValidGoal(fl validator.FieldLevel) bool {
	return domain.Goal(fl.Field().String()).IsValid()
}

// ValidPlatform validates one entry of the platforms set
func ValidPlatform(fl validator.FieldLevel) bool {
	return domain.Platform(fl.Field().String()).IsValid()
}
