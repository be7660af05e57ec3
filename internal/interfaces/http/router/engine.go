package router

import (
	"github.com/brandkit/backend/internal/infrastructure/config"
	"github.com/brandkit/backend/internal/infrastructure/logger"
	"github.com/brandkit/backend/internal/interfaces/http/handler"
	"github.com/brandkit/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EngineConfig holds what the global middleware chain needs
type EngineConfig struct {
	HTTP           config.HTTPConfig
	ServiceName    string
	TracingEnabled bool
	TracerProvider trace.TracerProvider
	HSTSEnabled    bool
	Logger         *zap.Logger
}

// NewEngine creates the gin engine with the global middleware chain and the
// public health routes. Admin routes are mounted afterwards through a Router.
func NewEngine(cfg EngineConfig, health *handler.HealthHandler) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	security := middleware.DefaultSecurityConfig()
	security.HSTSEnabled = cfg.HSTSEnabled

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName:    cfg.ServiceName,
			Enabled:        cfg.TracingEnabled,
			TracerProvider: cfg.TracerProvider,
		}),
		middleware.SpanErrorMarker(),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)),
		middleware.SecureWithConfig(security),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", health.Health)
	engine.GET("/ready", health.Ready)
	return engine, nil
}
