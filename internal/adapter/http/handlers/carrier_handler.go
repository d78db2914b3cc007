package handlers

import (
	"net/http"
	"strings"

	request "rotaclick/internal/adapter/http/dto/request"
	response "rotaclick/internal/adapter/http/dto/response"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CarrierHandler struct {
	usecase usecase.ICarrierUseCase
}

func NewCarrierHandler(uc usecase.ICarrierUseCase) *CarrierHandler {
	return &CarrierHandler{usecase: uc}
}

// Register godoc
// @Summary  Register a carrier
// @Description Validates the CNPJ check digits and the federal registry, then stores the carrier as pending approval.
// @Tags     carriers
// @Accept   json
// @Produce  json
// @Param    payload body request.RegisterCarrierRequest true "Company data"
// @Success  201 {object} response.CarrierResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /v1/carriers [post]
// @Security BearerAuth
func (h *CarrierHandler) Register(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RegisterCarrierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	carrier, err := h.usecase.Register(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapCarrierError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCarrier(carrier))
}

func (h *CarrierHandler) GetMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	carrier, err := h.usecase.GetMine(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapCarrierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarrier(carrier))
}

func (h *CarrierHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	carrier, err := h.usecase.GetByID(c.Request.Context(), actor, strings.TrimSpace(c.Param("carrier_id")))
	if err != nil {
		abortWith(c, mapCarrierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarrier(carrier))
}

// ListByStatus defaults to the approval queue.
func (h *CarrierHandler) ListByStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	status := entities.ApprovalStatus(c.DefaultQuery("status", string(entities.ApprovalStatusPendente)))
	list, err := h.usecase.ListByStatus(c.Request.Context(), actor, status)
	if err != nil {
		abortWith(c, mapCarrierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarriers(list))
}

// Approve godoc
// @Summary  Approve a carrier
// @Tags     carriers
// @Accept   json
// @Produce  json
// @Param    carrier_id path string true "Carrier id"
// @Param    payload body request.ApproveCarrierRequest true "Payment term (7, 21 or 28 days)"
// @Success  200 {object} response.CarrierResponse
// @Router   /v1/carriers/{carrier_id}/approve [patch]
// @Security BearerAuth
func (h *CarrierHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ApproveCarrierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, mapCarrierError(usecase.ErrInvalidPaymentTerm))
		return
	}

	carrier, err := h.usecase.Approve(c.Request.Context(), actor, strings.TrimSpace(c.Param("carrier_id")), payload.PaymentTermDays)
	if err != nil {
		abortWith(c, mapCarrierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarrier(carrier))
}

func (h *CarrierHandler) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RejectCarrierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, mapCarrierError(usecase.ErrRejectionReasonRequired))
		return
	}

	carrier, err := h.usecase.Reject(c.Request.Context(), actor, strings.TrimSpace(c.Param("carrier_id")), payload.Reason)
	if err != nil {
		abortWith(c, mapCarrierError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarrier(carrier))
}
