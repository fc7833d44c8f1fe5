package main

import (
	"github.com/gin-gonic/gin"

	"servicehub.backend/internal/interfaces/http/handlers"
	"servicehub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	vehicleHandler        *handlers.VehicleHandler
	catalogHandler        *handlers.CatalogHandler
	discoveryHandler      *handlers.DiscoveryHandler
	requestHandler        *handlers.RequestHandler
	billingHandler        *handlers.BillingHandler
	reviewHandler         *handlers.ReviewHandler
	adminHandler          *handlers.AdminHandler
	authMiddleware        gin.HandlerFunc
	idempotencyMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register/customer", d.authHandler.RegisterCustomer)
			auth.POST("/register/provider", d.authHandler.RegisterProvider)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Catalog routes (public read)
		v1.GET("/categories", d.catalogHandler.ListCategories)
		v1.GET("/services", d.catalogHandler.SearchServices)
		v1.GET("/services/:id", d.catalogHandler.GetService)

		// Discovery routes (public)
		v1.GET("/providers/nearby", d.discoveryHandler.DiscoverNearby)
		v1.GET("/providers/:id/reviews", d.reviewHandler.ListProviderReviews)

		// Customer profile and vehicles (protected, customer only)
		customers := v1.Group("")
		customers.Use(d.authMiddleware, middleware.RequireCustomer())
		{
			customers.GET("/customers/me", d.authHandler.GetCustomerProfile)

			customers.POST("/vehicles", d.vehicleHandler.AddVehicle)
			customers.GET("/vehicles", d.vehicleHandler.ListVehicles)
			customers.DELETE("/vehicles/:id", d.vehicleHandler.RemoveVehicle)

			customers.POST("/requests", d.requestHandler.CreateRequest)
			customers.GET("/requests/pending-review", d.requestHandler.ListPendingReview)
			customers.POST("/reviews", d.reviewHandler.CreateReview)
		}

		// Request routes shared between roles (protected)
		requests := v1.Group("/requests")
		requests.Use(d.authMiddleware)
		{
			requests.GET("", d.requestHandler.ListMyRequests)
			requests.GET("/:id", d.requestHandler.GetRequest)
			requests.POST("/:id/cancel", d.requestHandler.CancelRequest)
			requests.GET("/:id/invoice", d.billingHandler.GetRequestInvoice)
		}

		// Invoice routes (protected)
		invoices := v1.Group("/invoices")
		invoices.Use(d.authMiddleware)
		{
			invoices.GET("/:id", d.billingHandler.GetInvoice)
			invoices.POST("/:id/payments", d.idempotencyMiddleware, d.billingHandler.RecordPayment)
		}

		// Provider workspace (protected, provider only)
		provider := v1.Group("/provider")
		provider.Use(d.authMiddleware, middleware.RequireProvider())
		{
			provider.GET("/me", d.authHandler.GetProviderProfile)

			provider.POST("/services", d.catalogHandler.CreateService)
			provider.GET("/services", d.catalogHandler.ListOwnServices)
			provider.PATCH("/services/:id", d.catalogHandler.UpdateService)
			provider.DELETE("/services/:id", d.catalogHandler.DeleteService)

			provider.GET("/requests/pending", d.requestHandler.ListPendingFeed)
			provider.GET("/requests/active", d.requestHandler.ListActiveWork)
			provider.POST("/requests/:id/accept", d.idempotencyMiddleware, d.requestHandler.AcceptRequest)
			provider.POST("/requests/:id/reject", d.requestHandler.RejectRequest)
			provider.POST("/requests/:id/start", d.requestHandler.StartRequest)
			provider.POST("/requests/:id/complete", d.requestHandler.CompleteRequest)
			provider.POST("/requests/:id/invoice", d.billingHandler.IssueInvoice)

			provider.GET("/commissions", d.billingHandler.ListMyCommissions)
			provider.POST("/commissions/:id/pay", d.idempotencyMiddleware, d.billingHandler.PayCommission)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.PATCH("/providers/:id/approval", d.adminHandler.ApproveProvider)
			admin.POST("/requests/:id/start", d.requestHandler.StartRequest)
			admin.POST("/requests/:id/complete", d.requestHandler.CompleteRequest)
			admin.POST("/commissions/sweep", d.billingHandler.RunOverdueSweep)
		}
	}
}
