package entities

import "time"

// OrderStatus represents the print-job lifecycle.
//
// Domain notes:
//   - Forward sequence: pending -> processing -> printing -> shipped -> delivered.
//   - cancelled is reachable from pending or processing only.
//   - Transitions are admin-driven; a backward transition is treated as an
//     admin override and logged as an anomaly, not rejected.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPrinting   OrderStatus = "printing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusPrinting:   2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := orderStatusRank[s]
	return ok
}

// IsBackwardFrom reports whether moving from current to s goes against the
// forward sequence. Cancellation is never considered backward.
func (s OrderStatus) IsBackwardFrom(current OrderStatus) bool {
	if s == OrderStatusCancelled || current == OrderStatusCancelled {
		return false
	}
	return orderStatusRank[s] < orderStatusRank[current]
}

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}

// FileDetail is the uploaded-file metadata attached to an order. File bytes
// live in the external storage service; the order only keeps the summary.
type FileDetail struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
}

// Order is the aggregate root owned by the order lifecycle manager.
//
// Storage model (DynamoDB):
//   - PK: id (UUID assigned at creation)
type Order struct {
	ID                  string         `json:"id"`
	CustomerName        string         `json:"customer_name"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	DeliveryAddress     string         `json:"delivery_address"`
	Files               []FileDetail   `json:"files"`
	TotalPages          int            `json:"total_pages"`
	PageRange           string         `json:"page_range,omitempty"`
	SelectedPageCount   int            `json:"selected_page_count"`
	Settings            PrintSettings  `json:"settings"`
	Price               PriceBreakdown `json:"price"`
	PaymentMethod       PaymentMethod  `json:"payment_method"`
	PaymentStatus       PaymentStatus  `json:"payment_status"`
	Status              OrderStatus    `json:"status"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	AdminNotes          string         `json:"admin_notes,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// CanCancel reports whether the order is still in a cancellable state.
func (o Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// OrderTracking is the reduced, customer-safe projection returned by the
// tracking endpoint. It deliberately excludes admin notes and customer PII.
type OrderTracking struct {
	ID            string        `json:"id"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Total         float64       `json:"total"`
	Currency      string        `json:"currency"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
