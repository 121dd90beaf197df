package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArafatSadi1/doctors-portal/config"
	"github.com/ArafatSadi1/doctors-portal/cron"
	"github.com/ArafatSadi1/doctors-portal/database"
	"github.com/ArafatSadi1/doctors-portal/database/repository"
	"github.com/ArafatSadi1/doctors-portal/handlers"
	"github.com/ArafatSadi1/doctors-portal/middleware"
	"github.com/ArafatSadi1/doctors-portal/routes"
	"github.com/ArafatSadi1/doctors-portal/services/booking"
	"github.com/ArafatSadi1/doctors-portal/services/doctor"
	"github.com/ArafatSadi1/doctors-portal/services/notification"
	"github.com/ArafatSadi1/doctors-portal/services/user"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	cfg := config.AppConfig
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Document store: one client for the life of the process.
	mongoClient, err := database.Connect(rootCtx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	repos := repository.NewMongoRepositories(mongoClient.Database(cfg.DatabaseName), cfg.DBTimeout())
	if err := repos.EnsureIndexes(rootCtx); err != nil {
		logger.Fatal("main: failed to create indexes", zap.Error(err))
	}

	// Email delivery and booking locks. Without Redis both fall back to in-process versions.
	sender := notification.NewSendGridSender(cfg.EmailSenderKey, cfg.EmailSender, cfg.EmailSenderName, logger)
	mailer := &notification.AppointmentMailer{Sender: sender, ClinicAddress: cfg.ClinicAddress}

	var (
		locker      utils.KeyLocker
		notifier    notification.Notifier
		redisPings  []utils.Pinger
		emailWorker *cron.EmailWorker
		queueClient *asynq.Client
	)
	if cfg.RedisEnabled() {
		lockClient, err := utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisLockDB)
		if err != nil {
			logger.Fatal("main: failed to connect to Redis", zap.Error(err))
		}
		defer lockClient.Close()
		locker = utils.NewRedisLocker(lockClient, 10*time.Second)

		queueOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queueClient = asynq.NewClient(queueOpts)
		defer queueClient.Close()
		notifier = &notification.QueueNotifier{Client: queueClient, MaxRetry: cfg.EmailMaxRetry, Logger: logger}

		emailWorker = cron.NewEmailWorker(queueOpts, mailer, logger)
		emailWorker.Start()

		queuePing, err := utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisQueueDB)
		if err != nil {
			logger.Fatal("main: failed to connect to Redis queue database", zap.Error(err))
		}
		defer queuePing.Close()
		redisPings = append(redisPings,
			func(ctx context.Context) error { return lockClient.Ping(ctx).Err() },
			func(ctx context.Context) error { return queuePing.Ping(ctx).Err() },
		)
	} else {
		logger.Warn("main: REDIS_ADDR not set, using in-process booking locks and direct email delivery")
		locker = utils.NewLocalLocker()
		notifier = &notification.DirectNotifier{Mailer: mailer, Logger: logger}
	}

	health := utils.NewHealthMonitor(database.Ping(mongoClient), redisPings...)
	health.Start(rootCtx, 30*time.Second)

	// Services.
	tokens := utils.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL())
	userService := user.NewDefaultUserService(repos.Users, tokens, logger)
	doctorService := doctor.NewDefaultDoctorService(repos.Doctors, logger)
	bookingService := booking.NewDefaultBookingService(repos.Bookings, repos.Services, locker, notifier, logger)

	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	handlerBundle := &handlers.HandlerBundle{
		Gate: middleware.NewAuthGate(tokens, repos.Users),

		RootHandler:   handlers.RootHandler,
		HealthHandler: handlers.HealthHandler(health),

		GetAllUsersHandler: userHandler.GetAllUsersHandler,
		IsAdminHandler:     userHandler.IsAdminHandler,
		GrantAdminHandler:  userHandler.GrantAdminHandler,
		UpsertUserHandler:  userHandler.UpsertUserHandler,

		ListDoctorsHandler:  doctorHandler.ListDoctorsHandler,
		AddDoctorHandler:    doctorHandler.AddDoctorHandler,
		DeleteDoctorHandler: doctorHandler.DeleteDoctorHandler,

		GetPatientBookingsHandler: bookingHandler.GetPatientBookingsHandler,
		CreateBookingHandler:      bookingHandler.CreateBookingHandler,
		GetServicesHandler:        bookingHandler.GetServicesHandler,
		GetAvailableHandler:       bookingHandler.GetAvailableHandler,
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(rootCtx, cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Doctors portal listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if emailWorker != nil {
		emailWorker.Shutdown()
	}
	stop()

	logger.Info("main: server stopped gracefully")
}
