// File: callpilot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callpilot/catalog"
	"callpilot/config"
	"callpilot/handlers"
	"callpilot/middleware"
	"callpilot/models"
	"callpilot/routes"
	"callpilot/services/booking"
	"callpilot/services/briefing"
	"callpilot/services/calendar"
	"callpilot/services/ledger"
	"callpilot/services/notification"
	"callpilot/services/swarm"
	"callpilot/services/telephony"
	"callpilot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	config.ValidateRequired()
	logger := utils.GetLogger()

	// Shared HTTP client for all outbound adapter calls.
	httpClient := &http.Client{Timeout: 60 * time.Second}

	briefingSvc, err := briefing.NewGeminiService(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize briefing service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	providerRepo := catalog.NewFileProviderRepo(config.AppConfig.ProvidersPath)
	preferenceRepo := catalog.NewFilePreferenceRepo(config.AppConfig.PreferencesPath)

	// services.
	resolverInstance := &swarm.DefaultPreferenceResolver{
		Repo: preferenceRepo,
		Base: models.PreferenceSet{
			MaxDistance:   config.AppConfig.DefaultMaxDistance,
			MinRating:     config.AppConfig.DefaultMinRating,
			PreferredTime: config.AppConfig.DefaultPreferredTime,
		},
	}

	matchingServiceInstance := &swarm.DefaultMatchingService{
		ProviderRepo: providerRepo,
		CacheClient:  utils.MatchCacheClient(),
		Profile:      swarm.ScoringProfile(config.AppConfig.ScoringProfile),
	}

	calendarService := &calendar.HTTPService{
		AvailabilityURL: config.AppConfig.CheckAvailabilityURL,
		BookingURL:      config.AppConfig.ConfirmBookingURL,
		Client:          httpClient,
		Logger:          logger,
	}

	dispatcher := &telephony.ElevenLabsDispatcher{
		APIKey:             config.AppConfig.ElevenLabsAPIKey,
		AgentID:            config.AppConfig.AgentID,
		AgentPhoneNumberID: config.AppConfig.AgentPhoneNumberID,
		Client:             httpClient,
		Logger:             logger,
	}

	swarmService := &swarm.DefaultSwarmService{
		Matching:   matchingServiceInstance,
		Resolver:   resolverInstance,
		Briefing:   briefingSvc,
		Calendar:   calendarService,
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	bookingLedger := ledger.NewBookingLedger()
	relayService := &notification.WebhookRelayService{
		RelayURL: config.AppConfig.BookingRelayURL,
		Client:   httpClient,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		Ledger:   bookingLedger,
		Relay:    relayService,
		Calendar: calendarService,
		Logger:   logger,
	}

	swarmHandler := handlers.NewSwarmHandler(swarmService, matchingServiceInstance, resolverInstance, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingLedger, logger)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, swarmHandler, bookingHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
