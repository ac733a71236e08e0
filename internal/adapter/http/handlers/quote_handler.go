package handlers

import (
	"net/http"

	request "printlite/internal/adapter/http/dto/request"
	response "printlite/internal/adapter/http/dto/response"
	"printlite/internal/usecase"
	"printlite/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles quick-quote requests. Nothing is persisted and no tax
// is applied on this path.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	cmd := usecase.QuoteCommand{
		Pages:     payload.Pages,
		PageRange: payload.PageRange,
		Settings:  payload.ResolveSettings(),
	}

	breakdown, err := h.usecase.Quote(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceBreakdown(breakdown))
}
