package services

import (
	"encoding/json"
	"strings"
	"testing"

	"thybackend/internal/domain/service"
)

func TestWithDisplayPriceStampsEveryRecord(t *testing.T) {
	h := NewHandler(nil, nil, "Rs.")

	items := h.withDisplayPrice([]service.Service{
		{ID: 1, Title: "Full Body Checkup", Price: 1999},
		{ID: 2, Title: "Senior Citizen", Price: 2499.5},
	})

	if items[0].DisplayPrice != "Rs.1999" {
		t.Fatalf("got %q", items[0].DisplayPrice)
	}
	if items[1].DisplayPrice != "Rs.2499.5" {
		t.Fatalf("got %q", items[1].DisplayPrice)
	}
}

// The storefront reads the formatted price from the listed record, so the
// field has to survive into the wire body under its camelCase key.
func TestDisplayPriceOnTheWire(t *testing.T) {
	h := NewHandler(nil, nil, "Rs.")

	items := h.withDisplayPrice([]service.Service{{ID: 1, Title: "Aarogyam", Price: 1500}})
	body, err := json.Marshal(map[string]any{"services": items})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"displayPrice":"Rs.1500"`) {
		t.Fatalf("formatted price missing from body: %s", body)
	}
	if !strings.Contains(string(body), `"services":[`) {
		t.Fatalf("list envelope missing: %s", body)
	}
}
