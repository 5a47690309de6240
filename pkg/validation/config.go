package validation

import (
	"errors"
	"fmt"
	"slices"
)

// ConfigValidator collects problems across configuration fields so a caller
// sees every one of them in a single error instead of fixing them one by one.
type ConfigValidator struct {
	section  string
	problems []error
}

// NewConfigValidator starts validating the named configuration section.
func NewConfigValidator(section string) *ConfigValidator {
	return &ConfigValidator{section: section}
}

func (cv *ConfigValidator) addf(field, format string, args ...any) {
	cv.problems = append(cv.problems, fmt.Errorf("%s.%s: %s", cv.section, field, fmt.Sprintf(format, args...)))
}

// Required fails when value is empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.addf(field, "required field is empty")
	}
	return cv
}

// RangeInt fails when value lies outside [lo, hi].
func (cv *ConfigValidator) RangeInt(field string, value, lo, hi int) *ConfigValidator {
	if value < lo || value > hi {
		cv.addf(field, "value %d is outside range [%d, %d]", value, lo, hi)
	}
	return cv
}

// OneOf fails when value is not in allowed.
func (cv *ConfigValidator) OneOf(field, value string, allowed []string) *ConfigValidator {
	if !slices.Contains(allowed, value) {
		cv.addf(field, "value %q must be one of %v", value, allowed)
	}
	return cv
}

// Custom records the error returned by check, wrapped so errors.Is still
// matches the original.
func (cv *ConfigValidator) Custom(field string, check func() error) *ConfigValidator {
	if err := check(); err != nil {
		cv.problems = append(cv.problems, fmt.Errorf("%s.%s: %w", cv.section, field, err))
	}
	return cv
}

// When runs validations only if cond holds.
func (cv *ConfigValidator) When(cond bool, validations func(*ConfigValidator)) *ConfigValidator {
	if cond {
		validations(cv)
	}
	return cv
}

// Validate returns nil, the single problem found, or all problems joined
// under a count header.
func (cv *ConfigValidator) Validate() error {
	switch len(cv.problems) {
	case 0:
		return nil
	case 1:
		return cv.problems[0]
	}
	return fmt.Errorf("%s has %d problems:\n%w", cv.section, len(cv.problems), errors.Join(cv.problems...))
}
