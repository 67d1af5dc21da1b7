// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kioskdash/internal/delivery/api/middleware"
	"kioskdash/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OAuthHandler      *handler.OAuthHandler
	SessionHandler    *handler.SessionHandler
	AdminHandler      *handler.AdminHandler
	DonationHandler   *handler.DonationHandler
	DonorHandler      *handler.DonorHandler
	ReportHandler     *handler.ReportHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	oauthHandler      *handler.OAuthHandler
	sessionHandler    *handler.SessionHandler
	adminHandler      *handler.AdminHandler
	donationHandler   *handler.DonationHandler
	donorHandler      *handler.DonorHandler
	reportHandler     *handler.ReportHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		oauthHandler:      params.OAuthHandler,
		sessionHandler:    params.SessionHandler,
		adminHandler:      params.AdminHandler,
		donationHandler:   params.DonationHandler,
		donorHandler:      params.DonorHandler,
		reportHandler:     params.ReportHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Merchant connection handshake
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/authorize", r.oauthHandler.Authorize)
		oauthGroup.GET("/callback", r.oauthHandler.Callback)
	}

	e.POST("/auth/logout", r.sessionHandler.Logout)

	// Anonymous callers learn they are signed out instead of getting a 401.
	e.GET("/api/v1/session", r.sessionHandler.GetSession, r.sessionMiddleware.OptionalAuth)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Authenticate)

	apiV1.POST("/session/organization", r.sessionHandler.SwitchOrganization)
	apiV1.GET("/organizations", r.sessionHandler.ListOrganizations)

	adminGroup := apiV1.Group("/admin")
	adminGroup.POST("/impersonate", r.adminHandler.Impersonate, r.sessionMiddleware.RequireSuperAdmin)
	// Ending impersonation only needs the impersonation session itself.
	adminGroup.DELETE("/impersonate", r.adminHandler.EndImpersonation)
	adminGroup.GET("/organizations", r.adminHandler.ListOrganizations, r.sessionMiddleware.RequireSuperAdmin)

	// Everything below reads or mutates donation data inside the merchant scope.
	scoped := apiV1.Group("", r.sessionMiddleware.ResolveScope)

	donationsGroup := scoped.Group("/donations")
	{
		donationsGroup.GET("", r.donationHandler.ListDonations)
		donationsGroup.GET("/export", r.donationHandler.ExportDonations)
		donationsGroup.GET("/:paymentId", r.donationHandler.GetDonation)
		donationsGroup.PATCH("/:paymentId", r.donationHandler.UpdateDonation)
	}

	donorsGroup := scoped.Group("/donors")
	{
		donorsGroup.GET("", r.donorHandler.ListDonors)
		donorsGroup.GET("/duplicates", r.donorHandler.FindDuplicates)
		donorsGroup.POST("/merge", r.donorHandler.MergeDonors)
		donorsGroup.POST("/changes/:id/revert", r.donorHandler.RevertChange)
		donorsGroup.DELETE("/changes/:id", r.donorHandler.DeleteChange)
		donorsGroup.GET("/:identifier", r.donorHandler.GetDonor)
		donorsGroup.PATCH("/:identifier", r.donorHandler.UpdateDonor)
		donorsGroup.GET("/:identifier/history", r.donorHandler.GetDonorHistory)
	}

	reportsGroup := scoped.Group("/reports")
	{
		reportsGroup.GET("/statistics", r.reportHandler.GetStatistics)
		reportsGroup.GET("/charts/:type", r.reportHandler.GetChart)
	}
}
