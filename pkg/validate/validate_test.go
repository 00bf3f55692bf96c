package validate_test

import (
	"testing"

	"github.com/atelierhq/atelier/pkg/validate"
)

type productInput struct {
	Name     string  `json:"name"      validate:"required,min=2,max=255"`
	Price    float64 `json:"price"     validate:"required,gte=0"`
	Stock    int     `json:"stock"     validate:"gte=0"`
	ImageURL string  `json:"image_url" validate:"nullable,url"`
	Status   string  `json:"status"    validate:"nullable,in=PENDING,PROCESSING,SHIPPED,COMPLETED,CANCELLED"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Linen Tote",
		Price:    38,
		Stock:    24,
		ImageURL: "", // nullable, allowed to be empty
		Status:   "SHIPPED",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["price"]; !ok {
		t.Error("expected price to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Qty int `json:"qty" validate:"required,gte=1,lte=100"`
	}
	if errs := validate.Struct(in{Qty: -3}); !validate.HasErrors(errs) {
		t.Error("expected qty < 1 to fail")
	}
	if errs := validate.Struct(in{Qty: 5}); validate.HasErrors(errs) {
		t.Errorf("expected qty 5 to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=PENDING,SHIPPED,COMPLETED"`
	}
	if errs := validate.Struct(in{Status: "UNKNOWN"}); !validate.HasErrors(errs) {
		t.Error("expected status outside the set to fail")
	}
	if errs := validate.Struct(in{Status: "SHIPPED"}); validate.HasErrors(errs) {
		t.Errorf("expected SHIPPED to pass, got: %v", errs)
	}
}

func TestInRuleFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=A,B,C,max=10"`
		Name   string `json:"name"   validate:"required"`
	}
	errs := validate.Struct(in{Status: "B", Name: "x"})
	if validate.HasErrors(errs) {
		t.Errorf("expected in= param list to stop before max=, got: %v", errs)
	}
}

func TestMinMaxStringLength(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Name: "a"}); !validate.HasErrors(errs) {
		t.Error("expected 1-char name to fail min=2")
	}
	if errs := validate.Struct(in{Name: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected 6-char name to fail max=5")
	}
}
