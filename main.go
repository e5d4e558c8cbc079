package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"glowbook/config"
	"glowbook/cron"
	"glowbook/database"
	bookingRepoPkg "glowbook/database/repository/booking"
	catalogRepoPkg "glowbook/database/repository/catalog"
	clientRepoPkg "glowbook/database/repository/client"
	shiftRepoPkg "glowbook/database/repository/shift"
	staffRepoPkg "glowbook/database/repository/staff"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/routes"
	bookingSvc "glowbook/services/booking"
	clientSvc "glowbook/services/client"
	"glowbook/services/notification"
	"glowbook/services/schedule"
	staffSvc "glowbook/services/staff"
	"glowbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	salonHours, err := schedule.ParseSalonHours(config.AppConfig.SalonHours)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid salon hours configuration: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	shiftRepo := shiftRepoPkg.NewMongoShiftRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()

	// services.
	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()

	notificationService, err := notification.NewDefaultService(clientRepo, staffRepo, reminderQueue)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	resolver := schedule.NewResolver(shiftRepo, utils.GetScheduleCacheClient())

	engine := &bookingSvc.DefaultEngine{
		Resolver:     resolver,
		BookingRepo:  bookingRepo,
		StaffRepo:    staffRepo,
		CatalogRepo:  catalogRepo,
		Notification: notificationService,
		SalonHours:   salonHours,
		StepMin:      config.AppConfig.SlotStepMin,
		HorizonDays:  config.AppConfig.BookingHorizonDays,
	}

	staffService := &staffSvc.DefaultService{
		Staff:        staffRepo,
		Shifts:       shiftRepo,
		Resolver:     resolver,
		Notification: notificationService,
	}

	clientService := &clientSvc.DefaultService{
		Clients:  clientRepo,
		Bookings: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(engine, logger),
		Calendar: handlers.NewCalendarHandler(engine, bookingRepo),
		Staff:    handlers.NewStaffHandler(staffService),
		Client:   handlers.NewClientHandler(clientService),
		Catalog:  handlers.NewCatalogHandler(catalogRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker + external-service health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetScheduleCacheClient()},
		database.MongoClient,
	)

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
