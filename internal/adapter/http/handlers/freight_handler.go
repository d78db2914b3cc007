package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "rotaclick/internal/adapter/http/dto/request"
	response "rotaclick/internal/adapter/http/dto/response"
	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FreightHandler struct {
	usecase usecase.IFreightUseCase
	logger  *zap.Logger
	now     func() time.Time
}

func NewFreightHandler(uc usecase.IFreightUseCase, logger *zap.Logger) *FreightHandler {
	return &FreightHandler{usecase: uc, logger: logger, now: time.Now}
}

// Checkout godoc
// @Summary  Buy a quoted route
// @Description Re-prices the route server-side, stores a pending freight and opens a Mercado Pago checkout.
// @Tags     freights
// @Accept   json
// @Produce  json
// @Param    payload body request.CheckoutRequest true "Route, CEPs and cargo"
// @Success  201 {object} response.CheckoutResponse
// @Failure  422 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /v1/freights/checkout [post]
// @Security BearerAuth
func (h *FreightHandler) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	freight, err := h.usecase.Checkout(c.Request.Context(), actor, payload.ToCheckoutInput())
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckout(freight))
}

func (h *FreightHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(list, actor, h.now()))
}

func (h *FreightHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	f, err := h.usecase.GetByID(c.Request.Context(), actor, strings.TrimSpace(c.Param("id")))
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f, actor, h.now()))
}

// ConfirmPayment settles a freight paid outside the hosted checkout.
func (h *FreightHandler) ConfirmPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	f, err := h.usecase.ConfirmPayment(c.Request.Context(), actor, strings.TrimSpace(c.Param("id")), payload.PaymentID)
	if err != nil {
		abortWith(c, mapFreightError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f, actor, h.now()))
}

// MercadoPagoWebhook godoc
// @Summary  Mercado Pago payment notification
// @Description Fetches the payment from Mercado Pago and settles the referenced freight. Replays and unknown references are acknowledged.
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /v1/webhooks/mercadopago [post]
func (h *FreightHandler) MercadoPagoWebhook(c *gin.Context) {
	var payload request.MercadoPagoNotification
	// Legacy IPN calls carry everything in the query string and no body.
	_ = c.ShouldBindJSON(&payload)

	topic := c.Query("topic")
	if topic == "" {
		topic = c.Query("type")
	}
	paymentID := payload.ResolvePaymentID(topic, c.Query("id"), c.Query("data.id"))
	if paymentID == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	f, err := h.usecase.HandlePaymentNotification(c.Request.Context(), paymentID)
	switch {
	case err == nil:
		h.logger.Info("[freight][webhook] notification processed",
			zap.String("provider_payment_id", paymentID),
			zap.String("freight_id", f.ID),
			zap.String("payment_status", string(f.PaymentStatus)))
		c.JSON(http.StatusOK, gin.H{"status": "processed", "freight_id": f.ID, "payment_status": string(f.PaymentStatus)})
	case errors.Is(err, usecase.ErrFreightAlreadyPaid),
		errors.Is(err, usecase.ErrFreightNotFound),
		errors.Is(err, usecase.ErrPaymentNotFound):
		h.logger.Warn("[freight][webhook] notification ignored", zap.String("provider_payment_id", paymentID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	default:
		h.logger.Error("[freight][webhook] notification failed", zap.String("provider_payment_id", paymentID), zap.Error(err))
		abortWith(c, mapFreightError(err))
	}
}
