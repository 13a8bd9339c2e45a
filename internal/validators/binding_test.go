package validators

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type barberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

func TestDescribe_UsesJSONFieldName(t *testing.T) {
	RegisterJSONTagNames()

	err := binding.Validator.ValidateStruct(&barberRequest{})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	got := Describe(err)

	var ve httperr.ValidationError
	if !errors.As(got, &ve) {
		t.Fatalf("expected ValidationError, got %T", got)
	}
	if ve.Field != "name" || ve.Message != "name is required" {
		t.Fatalf("unexpected error: %+v", ve)
	}
}

func TestDescribe_Email(t *testing.T) {
	RegisterJSONTagNames()

	err := binding.Validator.ValidateStruct(&barberRequest{Name: "x", Email: "nope"})
	got := Describe(err)

	var ve httperr.ValidationError
	if !errors.As(got, &ve) || ve.Field != "email" {
		t.Fatalf("unexpected error: %v", got)
	}
}

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"ana@example.com": true,
		"ana@":            false,
		"":                false,
		"not-an-email":    false,
	}
	for in, want := range cases {
		if got := IsEmail(in); got != want {
			t.Errorf("IsEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("got %q", got)
	}
}
