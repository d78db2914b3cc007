package handlers

import (
	"net/http"

	request "rotaclick/internal/adapter/http/dto/request"
	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		abortWith(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary  Change platform settings
// @Description Partial update of the default margin, the fallback rate and the white-label branding.
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    payload body request.UpdateSettingsRequest true "Fields to change"
// @Success  200 {object} entities.PlatformSettings
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/settings [patch]
// @Security BearerAuth
func (h *SettingsHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	settings, err := h.usecase.Update(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Branding is public so storefronts can theme themselves.
func (h *SettingsHandler) Branding(c *gin.Context) {
	branding, err := h.usecase.Branding(c.Request.Context())
	if err != nil {
		abortWith(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, branding)
}
