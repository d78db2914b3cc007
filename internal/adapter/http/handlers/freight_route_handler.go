package handlers

import (
	"context"
	"net/http"
	"strings"

	request "rotaclick/internal/adapter/http/dto/request"
	response "rotaclick/internal/adapter/http/dto/response"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FreightRouteHandler serves route maintenance for carriers and
// administrators, including the bulk rate import.
type FreightRouteHandler struct {
	routes  usecase.IFreightRouteUseCase
	imports usecase.IRateImportUseCase
}

func NewFreightRouteHandler(routes usecase.IFreightRouteUseCase, imports usecase.IRateImportUseCase) *FreightRouteHandler {
	return &FreightRouteHandler{routes: routes, imports: imports}
}

// Create godoc
// @Summary  Create a freight route
// @Tags     routes
// @Accept   json
// @Produce  json
// @Param    carrier_id path string true "Carrier id"
// @Param    payload body request.RouteRequest true "Route"
// @Success  201 {object} response.FreightRouteResponse
// @Router   /v1/carriers/{carrier_id}/routes [post]
// @Security BearerAuth
func (h *FreightRouteHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RouteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	route, err := h.routes.Create(c.Request.Context(), actor, strings.TrimSpace(c.Param("carrier_id")), payload.ToRouteInput())
	if err != nil {
		abortWith(c, mapRouteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFreightRoute(route))
}

func (h *FreightRouteHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RouteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	route, err := h.routes.Update(c.Request.Context(), actor, strings.TrimSpace(c.Param("id")), payload.ToRouteInput())
	if err != nil {
		abortWith(c, mapRouteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreightRoute(route))
}

func (h *FreightRouteHandler) Activate(c *gin.Context) {
	h.withRoute(c, h.routes.Activate)
}

func (h *FreightRouteHandler) Deactivate(c *gin.Context) {
	h.withRoute(c, h.routes.Deactivate)
}

func (h *FreightRouteHandler) GetByID(c *gin.Context) {
	h.withRoute(c, h.routes.GetByID)
}

func (h *FreightRouteHandler) withRoute(
	c *gin.Context,
	op func(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	route, err := op(c.Request.Context(), actor, strings.TrimSpace(c.Param("id")))
	if err != nil {
		abortWith(c, mapRouteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreightRoute(route))
}

func (h *FreightRouteHandler) ListByCarrier(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	routes, err := h.routes.ListByCarrier(c.Request.Context(), actor, strings.TrimSpace(c.Param("carrier_id")))
	if err != nil {
		abortWith(c, mapRouteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFreightRoutes(routes))
}

// ImportJSON godoc
// @Summary  Bulk import rates from JSON rows
// @Tags     routes
// @Accept   json
// @Produce  json
// @Param    carrier_id path string true "Carrier id"
// @Param    payload body request.RateImportRequest true "Rows"
// @Success  200 {object} response.RateImportResponse
// @Router   /v1/carriers/{carrier_id}/routes/import [post]
// @Security BearerAuth
func (h *FreightRouteHandler) ImportJSON(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.RateImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	result, err := h.imports.Import(c.Request.Context(), actor, payload.ToImportCommand(strings.TrimSpace(c.Param("carrier_id"))))
	if err != nil {
		abortWith(c, mapRouteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBatchResult(result))
}

// ImportSpreadsheet godoc
// @Summary  Bulk import rates from an .xlsx or .csv upload
// @Tags     routes
// @Accept   multipart/form-data
// @Produce  json
// @Param    carrier_id path string true "Carrier id"
// @Param    file formData file true "Rate table"
// @Param    margin_percent formData string false "Margin override"
// @Success  200 {object} response.RateImportResponse
// @Router   /v1/carriers/{carrier_id}/routes/import/upload [post]
// @Security BearerAuth
func (h *FreightRouteHandler) ImportSpreadsheet(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	var margin *decimal.Decimal
	if raw := strings.TrimSpace(c.PostForm("margin_percent")); raw != "" {
		m, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
		margin = &m
	}

	f, err := fh.Open()
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	defer f.Close()

	result, err := h.imports.ImportSpreadsheet(c.Request.Context(), actor, strings.TrimSpace(c.Param("carrier_id")), margin, fh.Filename, f)
	if err != nil {
		abortWith(c, mapRouteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBatchResult(result))
}
