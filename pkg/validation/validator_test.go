package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePersonName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"simple", "Alex", ""},
		{"with space", "Mary Jane", ""},
		{"unicode", "Zoë", ""},
		{"max length", strings.Repeat("a", MaxNameLength), ""},
		{"empty", "", "field is required"},
		{"whitespace only", "   ", "visible characters"},
		{"control char", "Al\x00ex", "control characters"},
		{"newline", "Alex\n", "control characters"},
		{"too long", strings.Repeat("a", MaxNameLength+1), "must not exceed 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePersonName(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatePersonRequest_Nil(t *testing.T) {
	if err := ValidatePersonRequest(nil); err == nil {
		t.Error("expected error for nil request")
	}
}

func TestValidateFriendshipRequest(t *testing.T) {
	if err := ValidateFriendshipRequest(&FriendshipRequest{From: "Alex", To: "Jordan"}); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	err := ValidateFriendshipRequest(&FriendshipRequest{From: "Alex"})
	if err == nil || !strings.HasPrefix(err.Error(), "To:") {
		t.Errorf("expected To field error, got %v", err)
	}

	if err := ValidateFriendshipRequest(nil); err == nil {
		t.Error("expected error for nil request")
	}
}

func TestConfigValidator(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		err := NewConfigValidator("Config").
			Required("log_level", "info").
			OneOf("output.style", "plain", []string{"plain", "styled"}).
			RangeInt("graphql.max_depth", 3, 1, 10).
			Validate()
		if err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("single error", func(t *testing.T) {
		err := NewConfigValidator("Config").
			OneOf("output.style", "fancy", []string{"plain", "styled"}).
			Validate()
		if err == nil || !strings.Contains(err.Error(), `Config.output.style: value "fancy"`) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("reports every problem", func(t *testing.T) {
		notReadable := errors.New("not readable")
		err := NewConfigValidator("Config").
			Required("log_level", "").
			RangeInt("graphql.max_depth", 0, 1, 10).
			Custom("seed_file", func() error { return notReadable }).
			Validate()
		if err == nil {
			t.Fatal("expected an error")
		}
		msg := err.Error()
		for _, want := range []string{
			"Config has 3 problems",
			"Config.log_level: required field is empty",
			"Config.graphql.max_depth: value 0 is outside range [1, 10]",
			"Config.seed_file: not readable",
		} {
			if !strings.Contains(msg, want) {
				t.Errorf("error %q does not contain %q", msg, want)
			}
		}
		if !errors.Is(err, notReadable) {
			t.Error("custom check error should stay matchable with errors.Is")
		}
	})

	t.Run("when", func(t *testing.T) {
		err := NewConfigValidator("Config").
			When(false, func(cv *ConfigValidator) { cv.Required("x", "") }).
			When(true, func(cv *ConfigValidator) { cv.Required("y", "") }).
			Validate()
		if err == nil || err.Error() != "Config.y: required field is empty" {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
