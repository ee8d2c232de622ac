package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Struct validates tagged fields on the given struct.
func Struct(s interface{}) error {
	once.Do(func() {
		instance = validator.New()
	})
	return instance.Struct(s)
}
