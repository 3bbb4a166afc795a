package validator

import (
	"reflect"
	"strings"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseRole(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
		status := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
		return entity.AppointmentStatus(status).IsValid()
	})

	// request dates validate as the time they carry
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if t, ok := field.Interface().(dto.RequestTime); ok {
			return t.Time
		}
		return nil
	}, dto.RequestTime{})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "uuid":
				errors[field] = field + " must be a valid UUID"
			case "role":
				errors[field] = field + " must be PATIENT or DOCTOR"
			case "appointment_status":
				errors[field] = field + " must be one of PENDING, CONFIRMED, RESCHEDULED, REJECTED, COMPLETED"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
