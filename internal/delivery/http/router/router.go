// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler *handler.WebhookHandler
	StaffHandler   *handler.StaffHandler
	WebhookAuth    *middleware.WebhookAuthMiddleware
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler *handler.WebhookHandler
	staffHandler   *handler.StaffHandler
	webhookAuth    *middleware.WebhookAuthMiddleware
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler: params.WebhookHandler,
		staffHandler:   params.StaffHandler,
		webhookAuth:    params.WebhookAuth,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Gateway webhook, guarded by the shared secret
	webhookGroup := e.Group("/webhook")
	webhookGroup.Use(r.webhookAuth.Verify)
	{
		webhookGroup.POST("/messages", r.webhookHandler.HandleInbound)
	}

	// Staff routes
	staffGroup := e.Group("/staff")
	{
		staffGroup.POST("/login", r.staffHandler.Login)

		ordersGroup := staffGroup.Group("/orders")
		ordersGroup.Use(r.authMiddleware.Authenticate)
		{
			ordersGroup.POST("/:orderID/refunds", r.staffHandler.AppendRefund)
		}
	}
}
