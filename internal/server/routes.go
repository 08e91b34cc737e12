package server

import (
	"github.com/labstack/echo/v4"

	"example.com/kitchen-planner/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	inventoryHandler *handlers.InventoryHandler,
	mealHandler *handlers.MealHandler,
	profileHandler *handlers.ProfileHandler,
	catalogHandler *handlers.CatalogHandler,
	predictionHandler *handlers.PredictionHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	dashboardHandler *handlers.DashboardHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	reportRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	inventory := api.Group("/inventory", authMiddleware)
	inventory.GET("", inventoryHandler.List)
	inventory.GET("/low-stock", inventoryHandler.LowStock)
	inventory.GET("/:itemId", inventoryHandler.Get)
	inventory.POST("", inventoryHandler.Create)
	inventory.PUT("/:itemId", inventoryHandler.Update)
	inventory.DELETE("/:itemId", inventoryHandler.Delete)
	inventory.PATCH("/by-name/:name/adjust", inventoryHandler.Adjust)

	meals := api.Group("/meals", authMiddleware)
	meals.POST("", mealHandler.Log)
	meals.GET("/history", mealHandler.History)

	profile := api.Group("/profile", authMiddleware)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Upsert)
	profile.GET("/targets", profileHandler.ListTargets)
	profile.PUT("/targets", profileHandler.SetTarget)
	profile.DELETE("/targets/:name", profileHandler.DeleteTarget)

	catalog := api.Group("/catalog", authMiddleware)
	catalog.GET("", catalogHandler.List)
	catalog.POST("", catalogHandler.AddItem)
	catalog.PATCH("/:name/price", catalogHandler.UpdatePrice)

	predictions := api.Group("/predictions", authMiddleware)
	predictions.GET("", predictionHandler.Predict)
	predictions.GET("/shopping-list", predictionHandler.ShoppingList)

	analytics := api.Group("/analytics", authMiddleware, reportRateLimiter)
	analytics.GET("/budget", analyticsHandler.Budget)
	analytics.GET("/report", analyticsHandler.CompleteReport)
	analytics.GET("/districts", analyticsHandler.Districts)
	analytics.GET("/districts/compare", analyticsHandler.CompareDistricts)
	analytics.GET("/districts/:name/advice", analyticsHandler.DistrictAdvice)
	analytics.GET("/diets", analyticsHandler.Diets)
	analytics.GET("/alternatives/:category", analyticsHandler.Alternatives)
	analytics.GET("/seasonal", analyticsHandler.Seasonal)
	analytics.GET("/strategies", analyticsHandler.Strategies)
	analytics.GET("/inflation/:item", analyticsHandler.Inflation)
	analytics.POST("/market/outliers", analyticsHandler.MarketOutliers)

	dashboard := api.Group("/dashboard", authMiddleware)
	dashboard.GET("/overview", dashboardHandler.Overview)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
