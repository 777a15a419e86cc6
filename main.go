// File: voxcal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voxcal/config"
	voxcron "voxcal/cron"
	"voxcal/database"
	auditlogRepo "voxcal/database/repository/auditlog"
	"voxcal/directory/calendar"
	"voxcal/directory/contact"
	"voxcal/handlers"
	"voxcal/middleware"
	"voxcal/routes"
	"voxcal/services/scheduling"
	"voxcal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// External directories.
	calendarDir := calendar.NewHTTPDirectory()
	contactDir := contact.NewHTTPDirectory()

	// repositories.
	auditRepo := auditlogRepo.NewMongoAuditLogRepo()

	// services.
	schedulingService, err := scheduling.NewDefaultSchedulingService(calendarDir, contactDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize scheduling service: %v", err)
	}

	toolCallHandler := handlers.NewToolCallHandler(schedulingService, auditRepo, utils.GetCacheClient(), logger)
	adminHandler := handlers.NewAdminHandler(auditRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleToolCall:          toolCallHandler.HandleToolCall,
		CheckAvailability:       toolCallHandler.CheckAvailability,
		BookAppointment:         toolCallHandler.BookAppointment,
		UpdateAppointmentStatus: toolCallHandler.UpdateAppointmentStatus,
		ListToolCallsHandler:    adminHandler.ListToolCallsHandler,
		HealthHandler:           handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the upstream keepalive probe.
	keepalive, err := voxcron.StartKeepalive(calendarDir, contactDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start keepalive probe: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	keepalive.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
