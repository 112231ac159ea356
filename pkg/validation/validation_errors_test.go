package validation_test

import (
	"testing"

	"go-intake-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type form struct {
	Email       string `validate:"required,email"`
	CompanySlug string `validate:"required"`
}

func TestFormatFirstError(t *testing.T) {
	v := validator.New()

	t.Run("reports only the first violated field", func(t *testing.T) {
		err := v.Struct(form{})
		assert.Error(t, err)
		assert.Equal(t, "Email is required", validation.FormatFirstError(err))
	})

	t.Run("uses the tag-specific message", func(t *testing.T) {
		err := v.Struct(form{Email: "nope", CompanySlug: "acme"})
		assert.Error(t, err)
		assert.Equal(t, "Email must be a valid email address", validation.FormatFirstError(err))
	})

	t.Run("uses the phone message for the custom validator", func(t *testing.T) {
		validation.RegisterValidators(v)
		type qualification struct {
			Phone string `validate:"required,valid_phone"`
		}
		err := v.Struct(qualification{Phone: "not-a-phone!!!"})
		assert.Error(t, err)
		assert.Equal(t, "Phone number must be a valid phone number", validation.FormatFirstError(err))
	})

	t.Run("falls back to the field name for unlabeled fields", func(t *testing.T) {
		type other struct {
			Nickname string `validate:"required"`
		}
		err := v.Struct(other{})
		assert.Error(t, err)
		assert.Equal(t, "Nickname is required", validation.FormatFirstError(err))
	})

	t.Run("passes through non-validation errors", func(t *testing.T) {
		assert.Equal(t, assert.AnError.Error(), validation.FormatFirstError(assert.AnError))
	})
}
