// Package router contains routing setup for the HTTP delivery.
package router

import (
	"thikana/internal/delivery/http/middleware"
	"thikana/internal/delivery/http/router/handler"
	"thikana/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ListingHandler *handler.ListingHandler
	CompareHandler *handler.CompareHandler
	LeadHandler    *handler.LeadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	userHandler    *handler.UserHandler
	listingHandler *handler.ListingHandler
	compareHandler *handler.CompareHandler
	leadHandler    *handler.LeadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		listingHandler: params.ListingHandler,
		compareHandler: params.CompareHandler,
		leadHandler:    params.LeadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	agentOrAdmin := r.authMiddleware.RequireAnyRole(
		entity.RoleAgent.String(), entity.RoleAdmin.String())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Listing catalogue: public reads, agent/admin writes
	listingGroup := e.Group("/listings")
	{
		listingGroup.GET("", r.listingHandler.Search)
		listingGroup.GET("/nearby", r.listingHandler.Nearby)
		listingGroup.GET("/:id", r.listingHandler.Get)

		listingGroup.POST("", r.listingHandler.Create, r.authMiddleware.Authenticate, agentOrAdmin)
		listingGroup.PATCH("/:id", r.listingHandler.Update, r.authMiddleware.Authenticate, agentOrAdmin)
		listingGroup.DELETE("/:id", r.listingHandler.Delete, r.authMiddleware.Authenticate, agentOrAdmin)
	}

	// Comparison page and tray: open to visitors, tray keyed by account or cookie
	compareGroup := e.Group("/compare")
	compareGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		compareGroup.GET("", r.compareHandler.GetComparison)
		compareGroup.GET("/share", r.compareHandler.ShareQR)
		compareGroup.GET("/tray", r.compareHandler.GetTray)
		compareGroup.POST("/tray", r.compareHandler.AddToTray)
		compareGroup.DELETE("/tray/:id", r.compareHandler.RemoveFromTray)
	}

	// Inquiry pipeline: public submission, agent/admin dashboard
	leadGroup := e.Group("/leads")
	{
		leadGroup.POST("", r.leadHandler.Submit)

		leadGroup.GET("", r.leadHandler.List, r.authMiddleware.Authenticate, agentOrAdmin)
		leadGroup.GET("/:id", r.leadHandler.Get, r.authMiddleware.Authenticate, agentOrAdmin)
		leadGroup.PATCH("/:id/status", r.leadHandler.Transition, r.authMiddleware.Authenticate, agentOrAdmin)
		leadGroup.PATCH("/:id/assign", r.leadHandler.Assign, r.authMiddleware.Authenticate, agentOrAdmin)
	}
}
