package routes

import (
	"rotaclick/internal/adapter/http/handlers"
	"rotaclick/internal/adapter/http/middleware"
	"rotaclick/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCarriers = "/carriers"
	PathRoutes   = "/routes"
)

func addCarrierRoutes(rg *gin.RouterGroup, h *handlers.CarrierHandler, routes *handlers.FreightRouteHandler) {
	adminOnly := middleware.RequireRole(entities.RoleAdmin)
	manage := middleware.RequireRole(entities.RoleAdmin, entities.RoleCarrier)

	carriers := rg.Group(PathCarriers)
	{
		carriers.POST("", middleware.RequireRole(entities.RoleCarrier), h.Register)
		carriers.GET("", adminOnly, h.ListByStatus)
		carriers.GET("/me", middleware.RequireRole(entities.RoleCarrier), h.GetMine)
		carriers.GET("/:carrier_id", h.GetByID)
		carriers.PATCH("/:carrier_id/approve", adminOnly, h.Approve)
		carriers.PATCH("/:carrier_id/reject", adminOnly, h.Reject)

		carriers.POST("/:carrier_id/routes", manage, routes.Create)
		carriers.GET("/:carrier_id/routes", manage, routes.ListByCarrier)
		carriers.POST("/:carrier_id/routes/import", manage, routes.ImportJSON)
		carriers.POST("/:carrier_id/routes/import/upload", manage, routes.ImportSpreadsheet)
	}
}

func addFreightRouteRoutes(rg *gin.RouterGroup, h *handlers.FreightRouteHandler) {
	routes := rg.Group(PathRoutes, middleware.RequireRole(entities.RoleAdmin, entities.RoleCarrier))
	{
		routes.GET("/:id", h.GetByID)
		routes.PUT("/:id", h.Update)
		routes.PATCH("/:id/activate", h.Activate)
		routes.PATCH("/:id/deactivate", h.Deactivate)
	}
}
