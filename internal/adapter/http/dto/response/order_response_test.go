package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"printlite/internal/domain/entities"
)

func testOrder(now time.Time) entities.Order {
	return entities.Order{
		ID:                "ord-1",
		CustomerName:      "Asha Rao",
		Email:             "asha@example.com",
		Phone:             "9876543210",
		DeliveryAddress:   "12 MG Road, Bengaluru",
		Files:             []entities.FileDetail{{Name: "notes.pdf", Size: 2048, Pages: 10}},
		TotalPages:        10,
		SelectedPageCount: 10,
		Settings: entities.PrintSettings{
			PaperType: entities.PaperTypeStandard,
			ColorMode: entities.ColorModeColor,
			Sides:     entities.SidesSingle,
			Binding:   entities.BindingNone,
			Copies:    2,
		},
		Price:         entities.PriceBreakdown{Subtotal: 80, TaxAmount: 14.40, Total: 94.40, TaxRate: 0.18, Currency: entities.CurrencyINR},
		PaymentMethod: entities.PaymentMethodUPI,
		PaymentStatus: entities.PaymentStatusPending,
		Status:        entities.OrderStatusPending,
		AdminNotes:    "rush job",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	res := FromOrder(testOrder(now))

	if res.ID != "ord-1" || res.OrderID != "ord-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "pending" || res.PaymentStatus != "pending" || res.PaymentMethod != "upi" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.Price.Total != 94.40 || res.Price.Currency != "INR" {
		t.Fatalf("unexpected price: %+v", res.Price)
	}
	if len(res.Files) != 1 || res.Files[0].Name != "notes.pdf" {
		t.Fatalf("unexpected files: %+v", res.Files)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromTracking_ExcludesCustomerData(t *testing.T) {
	now := time.Now().UTC()
	res := FromTracking(entities.OrderTracking{
		ID:            "ord-1",
		Status:        entities.OrderStatusPrinting,
		PaymentStatus: entities.PaymentStatusCompleted,
		Total:         94.40,
		Currency:      entities.CurrencyINR,
		CreatedAt:     now,
		UpdatedAt:     now,
	})

	if res.OrderID != "ord-1" || res.Status != "printing" || res.Total != 94.40 {
		t.Fatalf("unexpected projection: %+v", res)
	}

	// The serialized projection must not leak names, contacts or admin notes.
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"customer_name", "email", "phone", "delivery_address", "admin_notes"} {
		if strings.Contains(string(raw), field) {
			t.Fatalf("tracking projection leaks %s: %s", field, raw)
		}
	}
}
