package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	response "rotaclick/internal/adapter/http/dto/response"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RepasseHandler struct {
	usecase usecase.IRepasseUseCase
	now     func() time.Time
}

func NewRepasseHandler(uc usecase.IRepasseUseCase) *RepasseHandler {
	return &RepasseHandler{usecase: uc, now: time.Now}
}

// List godoc
// @Summary  List carrier payouts
// @Tags     repasses
// @Produce  json
// @Param    status query string false "pendente or pago"
// @Param    carrier_id query string false "Carrier id (admin only)"
// @Param    overdue query bool false "Only overdue pending payouts"
// @Success  200 {array} response.FreightResponse
// @Router   /v1/repasses [get]
// @Security BearerAuth
func (h *RepasseHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	overdue, _ := strconv.ParseBool(c.DefaultQuery("overdue", "false"))
	filter := usecase.RepasseFilter{
		Status:      entities.RepasseStatus(strings.TrimSpace(c.Query("status"))),
		CarrierID:   c.Query("carrier_id"),
		OverdueOnly: overdue,
	}

	list, err := h.usecase.List(c.Request.Context(), actor, filter)
	if err != nil {
		abortWith(c, mapRepasseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreights(list, actor, h.now()))
}

func (h *RepasseHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	summary, err := h.usecase.Summary(c.Request.Context(), actor, c.Query("carrier_id"))
	if err != nil {
		abortWith(c, mapRepasseError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// MarkPaid godoc
// @Summary  Mark a carrier payout as paid
// @Tags     repasses
// @Produce  json
// @Param    freight_id path string true "Freight id"
// @Success  200 {object} response.FreightResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/repasses/{freight_id}/pay [post]
// @Security BearerAuth
func (h *RepasseHandler) MarkPaid(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	f, err := h.usecase.MarkPaid(c.Request.Context(), actor, strings.TrimSpace(c.Param("freight_id")))
	if err != nil {
		abortWith(c, mapRepasseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreight(f, actor, h.now()))
}
