package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"confbook/pkg/logger"
	"confbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

// nameRegex restricts conference names, locations and user ids to
// alphanumerics and spaces.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// RequestValidator checks registration and booking request payloads.
type RequestValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewRequestValidator(log *logger.Logger) *RequestValidator {
	v := validator.New()

	if err := v.RegisterValidation("name_chars", validateNameChars); err != nil {
		log.Fatal("Failed to register 'name_chars' validator",
			"error", err,
		)
	}

	return &RequestValidator{
		validate: v,
		logger:   log,
	}
}

func validateNameChars(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

func (v *RequestValidator) ValidateConference(req *model.CreateConferenceRequest) error {
	return v.validateStruct(req)
}

func (v *RequestValidator) ValidateUser(req *model.CreateUserRequest) error {
	return v.validateStruct(req)
}

func (v *RequestValidator) ValidateBook(req *model.BookRequest) error {
	return v.validateStruct(req)
}

func (v *RequestValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = "is required"
		case "min":
			message = fmt.Sprintf("must have at least %s characters/elements", err.Param())
		case "max":
			message = fmt.Sprintf("must have at most %s characters/elements", err.Param())
		case "name_chars":
			message = "must contain only alphanumeric characters and spaces"
		default:
			message = fmt.Sprintf("failed %s validation", err.Tag())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
