package models_test

import (
	"testing"

	"github.com/atelierhq/atelier/app/models"
)

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want models.OrderStatus
		ok   bool
	}{
		{"PENDING", models.StatusPending, true},
		{"shipped", models.StatusShipped, true},
		{"  Completed ", models.StatusCompleted, true},
		{"CANCELLED", models.StatusCancelled, true},
		{"REFUNDED", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, err := models.ParseOrderStatus(c.raw)
		if c.ok && err != nil {
			t.Errorf("ParseOrderStatus(%q): unexpected error %v", c.raw, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseOrderStatus(%q): expected error", c.raw)
		}
		if got != c.want {
			t.Errorf("ParseOrderStatus(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestStatusDisplayMetadata(t *testing.T) {
	for _, s := range models.AllOrderStatuses {
		if s.Label() == string(s) {
			t.Errorf("status %s has no display label", s)
		}
		if s.Color() == "gray" {
			t.Errorf("status %s has no badge colour", s)
		}
	}

	unknown := models.OrderStatus("REFUNDED")
	if unknown.Label() != "REFUNDED" {
		t.Errorf("unknown status label = %q", unknown.Label())
	}
	if unknown.Color() != "gray" {
		t.Errorf("unknown status colour = %q", unknown.Color())
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	item := models.OrderItem{Quantity: 3, UnitPrice: 21.5}
	if got := item.Subtotal(); got != 64.5 {
		t.Errorf("Subtotal() = %v, want 64.5", got)
	}
}
