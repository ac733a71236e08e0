package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"printlite/internal/domain/entities"
	"printlite/internal/usecase/interfaces"
)

// OrderMemoryRepository is the in-memory order store used in local mode and
// tests. A single RWMutex makes every operation an atomic read-modify-write,
// so two admins updating the same order cannot lose each other's writes.

type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders[id], nil
}

func (r *OrderMemoryRepository) List(_ context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Email != "" && o.Email != filter.Email {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if filter.Limit > 0 && len(orders) > filter.Limit {
		orders = orders[:filter.Limit]
	}
	return orders, nil
}

func (r *OrderMemoryRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus, adminNotes string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o.Status = status
	if adminNotes != "" {
		o.AdminNotes = adminNotes
	}
	o.UpdatedAt = time.Now().UTC()
	r.orders[id] = o
	return o, nil
}

func (r *OrderMemoryRepository) UpdatePaymentStatus(_ context.Context, id string, status entities.PaymentStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o.PaymentStatus = status
	o.UpdatedAt = time.Now().UTC()
	r.orders[id] = o
	return o, nil
}

func (r *OrderMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}
