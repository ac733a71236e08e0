package response

import (
	"time"

	"printlite/internal/domain/entities"
)

type FileDetailResponse struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
}

type PrintSettingsResponse struct {
	PaperType   string `json:"paper_type"`
	ColorOption string `json:"color_option"`
	PrintSides  string `json:"print_sides"`
	Binding     string `json:"binding"`
	Copies      int    `json:"copies"`
}

type PriceBreakdownResponse struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
	TaxRate   float64 `json:"tax_rate"`
	Currency  string  `json:"currency"`
}

// OrderResponse is the full admin-facing view of an order.
type OrderResponse struct {
	OrderID             string                 `json:"order_id"`
	ID                  string                 `json:"id"`
	CustomerName        string                 `json:"customer_name"`
	Email               string                 `json:"email"`
	Phone               string                 `json:"phone"`
	DeliveryAddress     string                 `json:"delivery_address"`
	Files               []FileDetailResponse   `json:"files"`
	TotalPages          int                    `json:"total_pages"`
	PageRange           string                 `json:"page_range,omitempty"`
	SelectedPageCount   int                    `json:"selected_page_count"`
	PrintSettings       PrintSettingsResponse  `json:"print_settings"`
	Price               PriceBreakdownResponse `json:"price"`
	PaymentMethod       string                 `json:"payment_method"`
	PaymentStatus       string                 `json:"payment_status"`
	Status              string                 `json:"status"`
	SpecialInstructions string                 `json:"special_instructions,omitempty"`
	AdminNotes          string                 `json:"admin_notes,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	files := make([]FileDetailResponse, 0, len(o.Files))
	for _, f := range o.Files {
		files = append(files, FileDetailResponse{Name: f.Name, Size: f.Size, Pages: f.Pages})
	}
	return OrderResponse{
		OrderID:           o.ID,
		ID:                o.ID,
		CustomerName:      o.CustomerName,
		Email:             o.Email,
		Phone:             o.Phone,
		DeliveryAddress:   o.DeliveryAddress,
		Files:             files,
		TotalPages:        o.TotalPages,
		PageRange:         o.PageRange,
		SelectedPageCount: o.SelectedPageCount,
		PrintSettings: PrintSettingsResponse{
			PaperType:   string(o.Settings.PaperType),
			ColorOption: string(o.Settings.ColorMode),
			PrintSides:  string(o.Settings.Sides),
			Binding:     string(o.Settings.Binding),
			Copies:      o.Settings.Copies,
		},
		Price:               FromPriceBreakdown(o.Price),
		PaymentMethod:       string(o.PaymentMethod),
		PaymentStatus:       string(o.PaymentStatus),
		Status:              string(o.Status),
		SpecialInstructions: o.SpecialInstructions,
		AdminNotes:          o.AdminNotes,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromPriceBreakdown(p entities.PriceBreakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		Subtotal:  p.Subtotal,
		TaxAmount: p.TaxAmount,
		Total:     p.Total,
		TaxRate:   p.TaxRate,
		Currency:  p.Currency,
	}
}

// TrackingResponse is the customer-safe projection. No admin notes, no PII
// beyond what the requester already holds (the order id).
type TrackingResponse struct {
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromTracking(t entities.OrderTracking) TrackingResponse {
	return TrackingResponse{
		OrderID:       t.ID,
		Status:        string(t.Status),
		PaymentStatus: string(t.PaymentStatus),
		Total:         t.Total,
		Currency:      t.Currency,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
