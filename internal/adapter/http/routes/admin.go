package routes

import (
	"rotaclick/internal/adapter/http/handlers"
	"rotaclick/internal/adapter/http/middleware"
	"rotaclick/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuditLogs = "/audit-logs"
	PathSettings  = "/settings"
)

func addBrandingRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	rg.GET("/branding", h.Branding)
}

func addAdminRoutes(rg *gin.RouterGroup, audit *handlers.AuditHandler, settings *handlers.SettingsHandler) {
	admin := rg.Group("", middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET(PathAuditLogs, audit.List)
		admin.GET(PathAuditLogs+"/report", audit.Report)
		admin.GET(PathSettings, settings.Get)
		admin.PATCH(PathSettings, settings.Update)
	}
}
