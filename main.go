package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pillowstat/config"
	"pillowstat/cron"
	"pillowstat/database"
	"pillowstat/handlers"
	"pillowstat/metrics"
	"pillowstat/middleware"
	"pillowstat/models"
	"pillowstat/routes"
	"pillowstat/services/analytics"
	"pillowstat/services/availability"
	"pillowstat/services/booking"
	"pillowstat/services/guest"
	"pillowstat/services/inquiry"
	"pillowstat/services/message"
	"pillowstat/services/payment"
	"pillowstat/services/units"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	loc := config.Location()
	db := database.InitDB(config.AppConfig.SeedDemoData, models.Today(loc))

	var m *metrics.Metrics
	if config.AppConfig.MetricsEnabled {
		m = metrics.NewMetrics("pillowstat")
	}

	// services.
	catalog := units.NewStaticCatalog(units.DefaultUnits())
	locks := booking.NewUnitLocks()

	guestService := guest.NewGuestService(db.Guests, db.Bookings, logger)
	bookingService := booking.NewBookingService(db.Bookings, guestService, db.Ledger, catalog, locks, logger, m)
	if config.AppConfig.BookingMaxStayDays > 0 {
		bookingService.MaxStayDays = config.AppConfig.BookingMaxStayDays
	}
	availabilityService := availability.NewAvailabilityService(db.Ledger, db.Bookings, catalog, locks, availability.Options{
		MaxRangeDays: config.AppConfig.AvailabilityMaxRangeDays,
		CapWrites:    config.AppConfig.AvailabilityCapWrites,
	}, logger, m)

	var gateway payment.Gateway
	switch config.AppConfig.PaymentGateway {
	case "stripe":
		if config.AppConfig.StripeKey == "" {
			logger.Fatal("main: PAYMENT_GATEWAY=stripe requires STRIPE_KEY")
		}
		gateway = payment.NewStripeGateway(config.AppConfig.StripeKey, config.AppConfig.StripeWebhookSecret)
	default:
		gateway = payment.NewMockGateway()
	}
	paymentService := payment.NewPaymentService(db.Transactions, bookingService, gateway, config.AppConfig.Currency, logger, m)
	logger.Info("Payment gateway configured", zap.String("gateway", gateway.Name()))

	messageService := message.NewMessageService(db.Messages, db.Bookings, db.Guests, logger)
	inquiryService := inquiry.NewInquiryService(db.Inquiries, catalog, logger)

	var redisClients []*redis.Client
	var reportCache analytics.Cache
	if client := utils.InitCache(); client != nil {
		redisClients = append(redisClients, client)
		reportCache = analytics.NewRedisCache(client, utils.AnalyticsCachePrefix, config.AnalyticsCacheTTL(), logger)
	}
	analyticsService := analytics.NewAnalyticsService(analytics.Sources{
		Bookings:     db.Bookings,
		Transactions: db.Transactions,
		Guests:       db.Guests,
		Reviews:      db.Reviews,
		Ledger:       db.Ledger,
		Catalog:      catalog,
	}, reportCache, loc, logger)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.Handlers{
		Bookings:     handlers.NewBookingHandler(bookingService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Guests:       handlers.NewGuestHandler(guestService),
		Payments:     handlers.NewPaymentHandler(paymentService),
		Messages:     handlers.NewMessageHandler(messageService),
		Inquiries:    handlers.NewInquiryHandler(inquiryService),
		Units:        handlers.NewUnitHandler(catalog),
		Analytics:    handlers.NewAnalyticsHandler(analyticsService),
	}, m)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(config.AppConfig.MaxRequestsPerMin)))

	routes.RegisterRoutes(router, handlerBundle)

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	utils.StartHealthMonitor(bgCtx, redisClients)

	scheduler, err := cron.InitReconcileWorker(config.AppConfig.ReconcileCron, availabilityService, logger)
	if err != nil {
		logger.Fatal("main: invalid RECONCILE_CRON", zap.Error(err))
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

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
