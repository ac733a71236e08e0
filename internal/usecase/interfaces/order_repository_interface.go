package interfaces

import (
	"context"

	"printlite/internal/domain/entities"
)

// OrderFilter narrows List results. Zero values mean "no constraint".
// Limit is a non-breaking pagination extension; 0 returns everything.
type OrderFilter struct {
	Status entities.OrderStatus
	Email  string
	Limit  int
}

// IOrderRepository abstracts order persistence.
//
// Conventions (shared by the DynamoDB and in-memory implementations):
//   - GetByID returns a zero-value Order when the id does not exist.
//   - Update methods return a zero-value Order when the id does not exist.
//   - List returns orders newest-first by creation time.
//   - Implementations must apply updates atomically per order and must not
//     hand out ids that collide under concurrent Create calls.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, adminNotes string) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
