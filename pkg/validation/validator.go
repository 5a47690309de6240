package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxNameLength is the longest accepted person name, in runes
	MaxNameLength = 100
)

func init() {
	validate = validator.New()
	// Registration only fails for an empty tag or nil func
	_ = validate.RegisterValidation("personname", isPersonName)
}

// PersonRequest is a request to add a person to the network
type PersonRequest struct {
	Name string `json:"name" yaml:"name" validate:"required,max=100,personname"`
}

// FriendshipRequest is a request to connect two people
type FriendshipRequest struct {
	From string `json:"from" yaml:"from" validate:"required,max=100,personname"`
	To   string `json:"to" yaml:"to" validate:"required,max=100,personname"`
}

// isPersonName rejects control characters and names made only of whitespace
func isPersonName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// ValidatePersonRequest validates a person creation request
func ValidatePersonRequest(req *PersonRequest) error {
	if req == nil {
		return errors.New("person request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidatePersonName validates a bare person name
func ValidatePersonName(name string) error {
	return ValidatePersonRequest(&PersonRequest{Name: name})
}

// ValidateFriendshipRequest validates the shape of both names in a friendship
// request. Existence of the people is checked by the network itself.
func ValidateFriendshipRequest(req *FriendshipRequest) error {
	if req == nil {
		return errors.New("friendship request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first failing field
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "max":
			return fmt.Errorf("%s: must not exceed %s characters", field, e.Param())
		case "personname":
			return fmt.Errorf("%s: must contain visible characters and no control characters", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
