package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/abhayg44/RFP-System/internal/core/port"
	"github.com/abhayg44/RFP-System/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(publisher port.QueuePublisher, storage port.IngestionStorage) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{echo: e}

	procurementHandler := handler.NewProcurementHTTPHandler(publisher, storage)

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/client/requests", procurementHandler.CreateClientRequest())
	e.POST("/api/v1/vendor/proposals", procurementHandler.CreateVendorProposal())
	e.POST("/api/v1/rfps/:id/evaluate", procurementHandler.TriggerEvaluation())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "rfp-api",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
