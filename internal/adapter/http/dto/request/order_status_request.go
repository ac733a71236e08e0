package request

import "printlite/internal/domain/entities"

// OrderStatusUpdateRequest is the admin payload for status transitions.
type OrderStatusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes"`
}

func (r OrderStatusUpdateRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(normalize(r.Status))
}

type PaymentStatusUpdateRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

func (r PaymentStatusUpdateRequest) ResolvePaymentStatus() entities.PaymentStatus {
	return entities.PaymentStatus(normalize(r.PaymentStatus))
}
