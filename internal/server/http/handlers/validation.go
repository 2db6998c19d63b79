package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

var customValidations = map[string]validatorv10.Func{
	"orderstatus": func(fl validatorv10.FieldLevel) bool {
		return model.OrderStatus(fl.Field().String()).Valid()
	},
}

// NewValidator returns a validator with the custom tags registered. It panics
// when a tag cannot be registered.
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()
	if err := registerValidations(v, customValidations); err != nil {
		panic(err)
	}
	return v
}

func registerValidations(v *validatorv10.Validate, rules map[string]validatorv10.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// BindAndValidate binds the JSON body into out and validates it. On failure
// it writes a 400 response and returns the error so the handler can stop.
func BindAndValidate(c *gin.Context, out any, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation failed",
			Fields: validationErrorsToMap(err),
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
