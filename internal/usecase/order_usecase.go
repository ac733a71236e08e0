package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"printlite/internal/domain/entities"
	"printlite/internal/domain/pricing"
	"printlite/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrMissingCustomerInfo  = errors.New("missing required customer fields")
	ErrNoFiles              = errors.New("at least one file is required")
	ErrInvalidFilePages     = errors.New("file page count must be positive")
	ErrEmptySelection       = errors.New("page selection is empty")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrUnknownPaymentStatus = errors.New("unknown payment status")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrCancelNotAllowed     = errors.New("order can no longer be cancelled")
)

// Event topics published on order mutations.
const (
	TopicOrderCreated        = "order.created"
	TopicOrderStatusUpdated  = "order.status_updated"
	TopicOrderPaymentUpdated = "order.payment_updated"
)

// CreateOrderCommand carries everything the checkout flow collected.
type CreateOrderCommand struct {
	CustomerName        string
	Email               string
	Phone               string
	DeliveryAddress     string
	Files               []entities.FileDetail
	Settings            entities.PrintSettings
	PageRange           string
	PaymentMethod       entities.PaymentMethod
	SpecialInstructions string
}

// IOrderUseCase exposes the order lifecycle operations.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, adminNotes string) (entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
	TrackOrder(ctx context.Context, id string) (entities.OrderTracking, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	engine    *pricing.Engine
	publisher interfaces.IEventPublisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the lifecycle manager. publisher may be nil, which
// disables event publishing.
func NewOrderUseCase(repo interfaces.IOrderRepository, engine *pricing.Engine, publisher interfaces.IEventPublisher) *OrderUseCase {
	return &OrderUseCase{repo: repo, engine: engine, publisher: publisher}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	cmd.DeliveryAddress = strings.TrimSpace(cmd.DeliveryAddress)

	if cmd.CustomerName == "" || cmd.DeliveryAddress == "" {
		return entities.Order{}, ErrMissingCustomerInfo
	}
	if cmd.Email == "" && cmd.Phone == "" {
		return entities.Order{}, ErrMissingCustomerInfo
	}
	if len(cmd.Files) == 0 {
		return entities.Order{}, ErrNoFiles
	}
	if !cmd.PaymentMethod.Valid() {
		return entities.Order{}, ErrUnknownPaymentMethod
	}

	totalPages := 0
	for _, f := range cmd.Files {
		if f.Pages <= 0 {
			return entities.Order{}, ErrInvalidFilePages
		}
		totalPages += f.Pages
	}

	// Absent page range means the whole document.
	selectedCount := totalPages
	if rangeExpr := strings.TrimSpace(cmd.PageRange); rangeExpr != "" {
		selection, err := pricing.ParsePageRange(rangeExpr, totalPages)
		if err != nil {
			return entities.Order{}, err
		}
		if selection.Count() == 0 {
			return entities.Order{}, ErrEmptySelection
		}
		selectedCount = selection.Count()
	}

	price, err := u.engine.ComputePrice(selectedCount, cmd.Settings, true)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:                  uuid.NewString(),
		CustomerName:        cmd.CustomerName,
		Email:               cmd.Email,
		Phone:               cmd.Phone,
		DeliveryAddress:     cmd.DeliveryAddress,
		Files:               cmd.Files,
		TotalPages:          totalPages,
		PageRange:           strings.TrimSpace(cmd.PageRange),
		SelectedPageCount:   selectedCount,
		Settings:            cmd.Settings,
		Price:               price,
		PaymentMethod:       cmd.PaymentMethod,
		PaymentStatus:       entities.PaymentStatusPending,
		Status:              entities.OrderStatusPending,
		SpecialInstructions: strings.TrimSpace(cmd.SpecialInstructions),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	u.publish(TopicOrderCreated, map[string]any{
		"order_id": created.ID,
		"status":   created.Status,
		"total":    created.Price.Total,
		"currency": created.Price.Currency,
	})
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrUnknownStatus
	}
	return u.repo.List(ctx, filter)
}

// UpdateOrderStatus applies an admin-driven status transition.
//
// Unknown statuses are rejected. Cancellation is only honored while the order
// is pending or processing. A backward transition is applied anyway (admin
// override) but logged as an anomaly.
func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, adminNotes string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrUnknownStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if status == entities.OrderStatusCancelled && !current.CanCancel() {
		return entities.Order{}, ErrCancelNotAllowed
	}
	if status.IsBackwardFrom(current.Status) {
		log.Printf("[order][usecase] anomaly: backward transition order_id=%s from=%s to=%s", id, current.Status, status)
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(adminNotes))
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.publish(TopicOrderStatusUpdated, map[string]any{
		"order_id": updated.ID,
		"from":     current.Status,
		"to":       updated.Status,
	})
	return updated, nil
}

func (u *OrderUseCase) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrUnknownPaymentStatus
	}

	updated, err := u.repo.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.publish(TopicOrderPaymentUpdated, map[string]any{
		"order_id":       updated.ID,
		"payment_status": updated.PaymentStatus,
	})
	return updated, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidOrderID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, ErrOrderNotFound
	}
	return true, nil
}

func (u *OrderUseCase) TrackOrder(ctx context.Context, id string) (entities.OrderTracking, error) {
	o, err := u.GetOrder(ctx, id)
	if err != nil {
		return entities.OrderTracking{}, err
	}
	return entities.OrderTracking{
		ID:            o.ID,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Total:         o.Price.Total,
		Currency:      o.Price.Currency,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}, nil
}

// publish fires a best-effort event in the background. Failures are logged
// and never surfaced to the caller.
func (u *OrderUseCase) publish(topic string, message map[string]any) {
	if u.publisher == nil {
		return
	}
	go func() {
		if err := u.publisher.Publish(context.Background(), topic, message); err != nil {
			log.Printf("[order][usecase] failed publishing %s event err=%v", topic, err)
		}
	}()
}
