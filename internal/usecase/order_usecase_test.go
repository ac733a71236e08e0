package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"printlite/internal/domain/entities"
	"printlite/internal/domain/pricing"
	"printlite/internal/usecase/interfaces"
	mock_interfaces "printlite/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCommand() CreateOrderCommand {
	return CreateOrderCommand{
		CustomerName:    "Asha Rao",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		DeliveryAddress: "12 MG Road, Bengaluru",
		Files: []entities.FileDetail{
			{Name: "notes.pdf", Size: 2048, Pages: 10},
		},
		Settings: entities.PrintSettings{
			PaperType: entities.PaperTypeStandard,
			ColorMode: entities.ColorModeColor,
			Sides:     entities.SidesSingle,
			Binding:   entities.BindingNone,
			Copies:    2,
		},
		PaymentMethod: entities.PaymentMethodUPI,
	}
}

func newOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return NewOrderUseCase(repo, pricing.NewEngine(pricing.Options{}), nil)
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.CustomerName = "   "
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, ErrMissingCustomerInfo) {
			t.Fatalf("expected ErrMissingCustomerInfo, got %v", err)
		}
	})

	t.Run("missing contact", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.Email = ""
		cmd.Phone = ""
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, ErrMissingCustomerInfo) {
			t.Fatalf("expected ErrMissingCustomerInfo, got %v", err)
		}
	})

	t.Run("no files", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.Files = nil
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, ErrNoFiles) {
			t.Fatalf("expected ErrNoFiles, got %v", err)
		}
	})

	t.Run("zero page file", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.Files = []entities.FileDetail{{Name: "empty.pdf", Pages: 0}}
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidFilePages) {
			t.Fatalf("expected ErrInvalidFilePages, got %v", err)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.PaymentMethod = "cheque"
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, ErrUnknownPaymentMethod) {
			t.Fatalf("expected ErrUnknownPaymentMethod, got %v", err)
		}
	})

	t.Run("out of bounds page range", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.PageRange = "1-5,12"
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, pricing.ErrPageOutOfRange) {
			t.Fatalf("expected ErrPageOutOfRange, got %v", err)
		}
	})

	t.Run("unknown settings fail closed", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		cmd := validCommand()
		cmd.Settings.PaperType = "papyrus"
		_, err := uc.CreateOrder(context.Background(), cmd)
		if !errors.Is(err, entities.ErrInvalidPrintSettings) {
			t.Fatalf("expected ErrInvalidPrintSettings, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), validCommand())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success prices the checkout path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Status != entities.OrderStatusPending || o.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("unexpected initial statuses: %s / %s", o.Status, o.PaymentStatus)
				}
				// 10 pages * 4.0 * 2 copies = 80, GST 14.40, total 94.40.
				if o.Price.Subtotal != 80 || o.Price.TaxAmount != 14.40 || o.Price.Total != 94.40 {
					t.Fatalf("unexpected price: %+v", o.Price)
				}
				if o.TotalPages != 10 || o.SelectedPageCount != 10 {
					t.Fatalf("unexpected page accounting: %d/%d", o.SelectedPageCount, o.TotalPages)
				}
				if o.CreatedAt.IsZero() || !o.CreatedAt.Equal(o.UpdatedAt) {
					t.Fatalf("expected CreatedAt == UpdatedAt, got %v / %v", o.CreatedAt, o.UpdatedAt)
				}
				return o, nil
			},
		)

		created, err := uc.CreateOrder(context.Background(), validCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Price.Currency != entities.CurrencyINR {
			t.Fatalf("expected INR, got %s", created.Price.Currency)
		}
	})

	t.Run("page range reduces billable pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.SelectedPageCount != 6 || o.TotalPages != 10 {
					t.Fatalf("expected 6 of 10 pages, got %d of %d", o.SelectedPageCount, o.TotalPages)
				}
				return o, nil
			},
		)

		cmd := validCommand()
		cmd.PageRange = "1-5,8"
		if _, err := uc.CreateOrder(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("publishes order created event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewOrderUseCase(repo, pricing.NewEngine(pricing.Options{}), pub)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		published := make(chan struct{})
		pub.EXPECT().Publish(gomock.Any(), TopicOrderCreated, gomock.Any()).DoAndReturn(
			func(context.Context, string, interface{}) error {
				close(published)
				return nil
			},
		)

		if _, err := uc.CreateOrder(context.Background(), validCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatalf("expected order.created to be published")
		}
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		_, err := uc.GetOrder(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.GetOrder(context.Background(), "missing")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)

		got, err := uc.GetOrder(context.Background(), " ord-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ord-1" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestOrderUseCase_UpdateOrderStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		_, err := uc.UpdateOrderStatus(context.Background(), "ord-1", "teleported", "")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.UpdateOrderStatus(context.Background(), "missing", entities.OrderStatusProcessing, "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("cancel rejected after printing starts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPrinting}, nil)

		_, err := uc.UpdateOrderStatus(context.Background(), "ord-1", entities.OrderStatusCancelled, "")
		if !errors.Is(err, ErrCancelNotAllowed) {
			t.Fatalf("expected ErrCancelNotAllowed, got %v", err)
		}
	})

	t.Run("cancel allowed while processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusProcessing}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusCancelled, "out of stock").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCancelled, AdminNotes: "out of stock"}, nil)

		got, err := uc.UpdateOrderStatus(context.Background(), "ord-1", entities.OrderStatusCancelled, "out of stock")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancelled, got %s", got.Status)
		}
	})

	t.Run("backward transition is applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusShipped}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPrinting, "").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPrinting}, nil)

		got, err := uc.UpdateOrderStatus(context.Background(), "ord-1", entities.OrderStatusPrinting, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusPrinting {
			t.Fatalf("expected printing, got %s", got.Status)
		}
	})

	t.Run("idempotent repeat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		processing := entities.Order{ID: "ord-1", Status: entities.OrderStatusProcessing}
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusProcessing, "").Return(processing, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(processing, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusProcessing, "").Return(processing, nil)

		first, err := uc.UpdateOrderStatus(context.Background(), "ord-1", entities.OrderStatusProcessing, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.UpdateOrderStatus(context.Background(), "ord-1", entities.OrderStatusProcessing, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Status != second.Status {
			t.Fatalf("expected identical terminal state, got %s vs %s", first.Status, second.Status)
		}
	})
}

func TestOrderUseCase_UpdatePaymentStatus(t *testing.T) {
	t.Run("unknown payment status", func(t *testing.T) {
		uc := newOrderUseCase(nil)
		_, err := uc.UpdatePaymentStatus(context.Background(), "ord-1", "refunded")
		if !errors.Is(err, ErrUnknownPaymentStatus) {
			t.Fatalf("expected ErrUnknownPaymentStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "missing", entities.PaymentStatusCompleted).Return(entities.Order{}, nil)

		_, err := uc.UpdatePaymentStatus(context.Background(), "missing", entities.PaymentStatusCompleted)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().UpdatePaymentStatus(gomock.Any(), "ord-1", entities.PaymentStatusCompleted).
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusCompleted}, nil)

		got, err := uc.UpdatePaymentStatus(context.Background(), "ord-1", entities.PaymentStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", got.PaymentStatus)
		}
	})
}

func TestOrderUseCase_DeleteOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		_, err := uc.DeleteOrder(context.Background(), "missing")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := newOrderUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "ord-1").Return(true, nil)

		ok, err := uc.DeleteOrder(context.Background(), "ord-1")
		if err != nil || !ok {
			t.Fatalf("expected deleted, got %v / %v", ok, err)
		}
	})
}

func TestOrderUseCase_TrackOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := newOrderUseCase(repo)

	now := time.Now().UTC()
	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
		ID:            "ord-1",
		CustomerName:  "Asha Rao",
		AdminNotes:    "reprint page 3",
		Status:        entities.OrderStatusShipped,
		PaymentStatus: entities.PaymentStatusCompleted,
		Price:         entities.PriceBreakdown{Total: 94.40, Currency: entities.CurrencyINR},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil)

	got, err := uc.TrackOrder(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.OrderStatusShipped || got.PaymentStatus != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected projection: %+v", got)
	}
	if got.Total != 94.40 || got.Currency != entities.CurrencyINR {
		t.Fatalf("unexpected totals: %+v", got)
	}
}
