package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Cari-app/cari-quizzies-sub001/internal/errors"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// Validator wraps the go-playground validate instance with the custom
// rules registered.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	RegisterCustomValidators(validate)
	return &Validator{validate: validate}
}

func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		if converted := apperrors.ToValidationErrors(err); len(converted) > 0 {
			return converted
		}
		return err
	}
	return nil
}

func (v *Validator) Var(field any, tag string) error {
	return v.validate.Var(field, tag)
}

// Custom validation functions

func ValidateComponentType(fl validator.FieldLevel) bool {
	value := models.ComponentType(fl.Field().String())
	for _, t := range models.KnownTypes {
		if t == value {
			return true
		}
	}
	return false
}

// customIDPattern is the slug shape of user-chosen response keys.
var customIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func ValidateCustomID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional; empty means "use the system id"
	}
	return customIDPattern.MatchString(value)
}

func ValidateDestination(fl validator.FieldLevel) bool {
	switch models.Destination(fl.Field().String()) {
	case models.DestinationNext, models.DestinationSubmit, models.DestinationSpecific, "":
		return true
	}
	return false
}

func ValidateButtonAction(fl validator.FieldLevel) bool {
	switch models.ButtonAction(fl.Field().String()) {
	case models.ActionNext, models.ActionSubmit, models.ActionLink, "":
		return true
	}
	return false
}

// RegisterCustomValidators registers all custom validators
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("component_type", ValidateComponentType)
	validate.RegisterValidation("custom_id", ValidateCustomID)
	validate.RegisterValidation("destination", ValidateDestination)
	validate.RegisterValidation("button_action", ValidateButtonAction)

	// Register custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
