package handlers

import (
	"net/http"

	request "rotaclick/internal/adapter/http/dto/request"
	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Quote godoc
// @Summary      Quote a shipment
// @Description  Prices the cargo on every active route serving the CEP pair, cheapest first. Falls back to an estimate when no route exists.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload body request.QuoteRequest true "Cargo and CEPs"
// @Success      200 {object} usecase.QuoteResult
// @Failure      400 {object} pkg.HTTPError
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Quote(c.Request.Context(), payload.ToQuoteRequest())
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}
