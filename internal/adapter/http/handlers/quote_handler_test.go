package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"printlite/internal/adapter/http/handlers/mocks"
	"printlite/internal/domain/entities"
	"printlite/internal/domain/pricing"
	"printlite/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotes", h.CreateQuote)
	return r
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/quotes", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"copies":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("page range error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(entities.PriceBreakdown{}, pricing.ErrPageOutOfRange)

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"pages":10,"pageRange":"1-12"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("legacy field names resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := quoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().Quote(gomock.Any(), gomock.AssignableToTypeOf(usecase.QuoteCommand{})).DoAndReturn(
			func(_ any, cmd usecase.QuoteCommand) (entities.PriceBreakdown, error) {
				if cmd.Settings.PaperType != entities.PaperTypePremium {
					t.Fatalf("expected paperQuality to resolve, got %+v", cmd.Settings)
				}
				if cmd.Settings.ColorMode != entities.ColorModeBlackAndWhite {
					t.Fatalf("expected printType to resolve, got %+v", cmd.Settings)
				}
				return entities.PriceBreakdown{Subtotal: 20, Total: 20, Currency: entities.CurrencyINR}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"pages":10,"paperQuality":"premium","printType":"bw","sides":"single"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["total"] != 20.0 || body["tax_amount"] != 0.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
