package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/kitchen-planner/backend/internal/auth"
	"example.com/kitchen-planner/backend/internal/config"
	"example.com/kitchen-planner/backend/internal/engine"
	"example.com/kitchen-planner/backend/internal/handlers"
	"example.com/kitchen-planner/backend/internal/notifications"
	"example.com/kitchen-planner/backend/internal/refdata"
	"example.com/kitchen-planner/backend/internal/repository"
)

// New собирает HTTP-сервер Echo с роутами и зависимостями.
func New(cfg config.Config, logger *slog.Logger, db *pgxpool.Pool, store *refdata.Store) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	householdRepo := repository.NewHouseholdRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	mealRepo := repository.NewMealRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	notificationHub := notifications.NewHub()

	estimator := engine.NewEstimator(engine.EstimatorConfig{
		HistoryMinDays:        cfg.Engine.HistoryMinDays,
		KgPerPersonPerDay:     cfg.Engine.KgPerPersonPerDay,
		GramsPerPersonPerDay:  cfg.Engine.GramsPerPersonPerDay,
		PiecesPerPersonPerDay: cfg.Engine.PiecesPerPersonPerDay,
	})

	authHandler := handlers.NewAuthHandler(householdRepo, tokenRepo, tokenManager)
	inventoryHandler := handlers.NewInventoryHandler(inventoryRepo, notificationHub)
	mealHandler := handlers.NewMealHandler(mealRepo, inventoryRepo, notificationHub, cfg.Engine.HistoryWindowDays)
	profileHandler := handlers.NewProfileHandler(profileRepo, targetRepo)
	catalogHandler := handlers.NewCatalogHandler(store, householdRepo, notificationHub, cfg.Admin.Emails)
	predictionHandler := handlers.NewPredictionHandler(store, estimator, inventoryRepo, mealRepo, profileRepo, targetRepo, notificationHub, cfg.Engine.HistoryWindowDays)
	analyticsHandler := handlers.NewAnalyticsHandler(store, profileRepo)
	dashboardHandler := handlers.NewDashboardHandler(store, predictionHandler, inventoryRepo, mealRepo, profileRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationHub)

	registerRoutes(
		e,
		authHandler,
		inventoryHandler,
		mealHandler,
		profileHandler,
		catalogHandler,
		predictionHandler,
		analyticsHandler,
		dashboardHandler,
		notificationHandler,
		auth.JWTMiddleware(tokenManager),
		authRateLimiter(cfg.Auth),
		reportRateLimiter(cfg.Engine),
	)

	return e
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func authRateLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

func reportRateLimiter(cfg config.EngineConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.ReportRateLimitPerMin) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.ReportRateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
