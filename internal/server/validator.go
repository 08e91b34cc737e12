package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewValidator создает echo.Validator на базе go-playground/validator.
func NewValidator() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate запускает проверку структуры запроса по тегам.
func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
