package basehdl

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/cobreklo/portafolio-api/internal/common"
)

// ParseAndValidate binds the JSON body into dto and runs struct-tag
// validation. Validation failures are rejected here, before any store
// call, with field-level details in the error envelope.
func ParseAndValidate(c fiber.Ctx, validate *validator.Validate, dto interface{}) error {
	if err := c.Bind().Body(dto); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	if err := validate.Struct(dto); err != nil {
		var details []map[string]string
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				details = append(details, map[string]string{
					"field": fieldErr.Field(),
					"tag":   fieldErr.Tag(),
					"param": fieldErr.Param(),
				})
			}
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, details)
	}

	return nil
}

// RequireParam returns the named route parameter or a validation error
// when it is empty.
func RequireParam(c fiber.Ctx, name string) (string, error) {
	value := c.Params(name)
	if value == "" {
		return "", common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest,
			map[string]string{"param": name})
	}
	return value, nil
}
