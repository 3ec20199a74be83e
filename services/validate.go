package services

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// menu names allow alphanumerics, spaces and . ' -
var menuNamePattern = regexp.MustCompile(`^[a-zA-Z0-9.' -]+$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("menuname", func(fl validator.FieldLevel) bool {
		return menuNamePattern.MatchString(fl.Field().String())
	})
	return v
}
