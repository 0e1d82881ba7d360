package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Host     string `json:"host" validate:"required"`
	Protocol string `json:"protocol" validate:"omitempty,oneof=http https"`
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(sample{Host: "api.example.com", Protocol: "https"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Required(t *testing.T) {
	err := Validate(sample{})
	if err == nil {
		t.Fatal("expected error for missing host")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	if len(verr.Fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(verr.Fields))
	}
	if verr.Fields[0].Field != "host" {
		t.Errorf("expected field 'host', got %q", verr.Fields[0].Field)
	}
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(sample{Host: "api.example.com", Protocol: "gopher"})
	if err == nil {
		t.Fatal("expected error for bad protocol")
	}
	if !strings.Contains(err.Error(), "protocol") {
		t.Errorf("error should mention protocol, got %v", err)
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	type tagged struct {
		BaseAddress string `json:"base_address" validate:"required"`
	}
	err := Validate(tagged{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "base_address") {
		t.Errorf("expected json tag name in message, got %v", err)
	}
}
