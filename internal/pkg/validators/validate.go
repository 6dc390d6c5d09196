package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error returned from Struct.
var ErrValidation = errors.New("validation failed")

var (
	instance *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with the custom rules registered:
// "frphone" and "siret".
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		_ = instance.RegisterValidation("frphone", FrenchPhoneValidation)
		_ = instance.RegisterValidation("siret", SiretValidation)
	})
	return instance
}

// Struct validates s and flattens validation errors into a single readable error.
func Struct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
