package routes

import (
	"rotaclick/internal/adapter/http/handlers"
	"rotaclick/internal/adapter/http/middleware"
	"rotaclick/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathFreights = "/freights"
	PathRepasses = "/repasses"
	PathWebhooks = "/webhooks"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.POST(PathQuotes, h.Quote)
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.FreightHandler) {
	rg.POST(PathWebhooks+"/mercadopago", h.MercadoPagoWebhook)
}

func addFreightRoutes(rg *gin.RouterGroup, h *handlers.FreightHandler) {
	freights := rg.Group(PathFreights)
	{
		freights.POST("/checkout", middleware.RequireRole(entities.RoleCustomer), h.Checkout)
		freights.GET("", h.List)
		freights.GET("/:id", h.GetByID)
		freights.POST("/:id/confirm-payment", middleware.RequireRole(entities.RoleAdmin), h.ConfirmPayment)
	}
}

func addRepasseRoutes(rg *gin.RouterGroup, h *handlers.RepasseHandler) {
	repasses := rg.Group(PathRepasses, middleware.RequireRole(entities.RoleAdmin, entities.RoleCarrier))
	{
		repasses.GET("", h.List)
		repasses.GET("/summary", h.Summary)
		repasses.POST("/:freight_id/pay", middleware.RequireRole(entities.RoleAdmin), h.MarkPaid)
	}
}
