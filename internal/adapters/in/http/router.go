package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds an echo instance with recovery, request logging, OpenAPI
// request validation and every route of s registered.
func NewRouter(s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("component", "http"),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	RegisterRoutes(e, s, validator)
	return e, nil
}

// RegisterRoutes mounts the report API on e. The middleware applies to the
// /api/v1 group only.
func RegisterRoutes(e *echo.Echo, s *Server, m ...echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", OpenAPIJSON)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", m...)
	v1.GET("/deliveries", s.GetDeliveries)
	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/deliveries/ordered", s.GetOrderedDeliveries)
	v1.GET("/deliveries/search", s.SearchDeliveries)
	v1.GET("/deliveries/:deliveryId", s.GetDelivery)
	v1.GET("/clients/:clientId/deliveries", s.GetClientDeliveries)
	v1.GET("/statistics", s.GetStatistics)
	v1.GET("/directions/average-gaps", s.GetAverageGaps)
}
