package main

import (
	"context"
	"fmt"
	"log"
	"medical-portal/internal/app/config"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/delivery/http/controllers"
	"medical-portal/internal/app/delivery/http/middlewares"
	"medical-portal/internal/app/delivery/http/routers"
	"medical-portal/internal/app/drivers/database"
	"medical-portal/internal/app/drivers/logger"
	"medical-portal/internal/app/drivers/messaging"
	authBackend "medical-portal/internal/app/services/backend/auth"
	directoryBackend "medical-portal/internal/app/services/backend/directories"
	"medical-portal/internal/app/services/core/access"
	"medical-portal/internal/app/services/core/auth"
	"medical-portal/internal/app/services/core/booking"
	"medical-portal/internal/app/services/core/directories"
	"medical-portal/internal/app/services/core/navigation"
	"medical-portal/internal/app/services/core/session"
	"medical-portal/internal/app/services/shared/authevents"
	"medical-portal/internal/app/services/shared/ratelimiter"
	"medical-portal/internal/app/services/shared/redis"
	"medical-portal/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		AccessLogger:   logger.NewLogrusLogger(internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		bootstrap.Logger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	slotTTL := time.Duration(internalConfig.App.SessionSlotTTLInHours) * time.Hour
	backendTimeout := time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second

	// Session slots
	var slotRepository contracts.SessionSlotRepository
	switch internalConfig.App.SessionDriver {
	case constvars.SessionDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(bootstrap.DriverConfig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := session.EnsureIndexes(ctx, bootstrap.MongoDB)
		if err != nil {
			return err
		}
		slotRepository = session.NewMongoSlotRepository(bootstrap.MongoDB, slotTTL)
	case constvars.SessionDriverRedis:
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig)
		slotRepository = session.NewRedisSlotRepository(redis.NewRedisRepository(bootstrap.Redis), slotTTL)
	default:
		return fmt.Errorf("unknown session driver %q", internalConfig.App.SessionDriver)
	}
	sessionStores := session.NewSessionStoreProvider(internalConfig.App.SessionSlotName, slotRepository, bootstrap.Logger)

	// Auth events
	eventPublisher := authevents.NewNoopPublisher()
	bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)
	if bootstrap.RabbitMQ != nil {
		publisher, err := authevents.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.AuthEventQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Login throttling
	loginLimiter := ratelimiter.NewLoginLimiter(
		internalConfig.App.LoginMaxAttempts,
		time.Duration(internalConfig.App.LoginAttemptWindowInSeconds)*time.Second,
		time.Duration(internalConfig.App.LoginBlockTimeInSeconds)*time.Second,
	)

	// Access policies
	accessEnforcer, err := access.NewEnforcer()
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig, sessionStores, loginLimiter, accessEnforcer)

	// Auth
	authBackendClient := authBackend.NewAuthBackendClient(
		internalConfig.Backend.BaseUrl,
		internalConfig.Backend.LoginPath,
		internalConfig.Backend.RegisterPath,
		backendTimeout,
		bootstrap.Logger,
	)
	authUsecase := auth.NewAuthUsecase(authBackendClient, eventPublisher, bootstrap.Logger)

	// Directories
	directoryClient := directoryBackend.NewDirectoryClient(internalConfig.Backend.BaseUrl, backendTimeout, bootstrap.Logger)
	directoryUsecase := directories.NewDirectoryUsecase(directoryClient, bootstrap.Logger)

	// Booking
	idleTimeout := time.Duration(internalConfig.App.BookingWizardIdleTimeoutInMinutes) * time.Minute
	bookingRegistry := booking.NewRegistry(idleTimeout)
	bookingUsecase := booking.NewBookingUsecase(bookingRegistry, bootstrap.Logger)
	startBookingSweeper(bootstrap, bookingRegistry, idleTimeout)

	return routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, bootstrap.AccessLogger, &routers.Controllers{
		Auth:       controllers.NewAuthController(bootstrap.Logger, authUsecase, sessionStores, internalConfig, bookingUsecase),
		Page:       controllers.NewPageController(bootstrap.Logger, directoryUsecase, internalConfig),
		Navigation: controllers.NewNavigationController(bootstrap.Logger, navigation.DefaultMenu()),
		Booking:    controllers.NewBookingController(bootstrap.Logger, bookingUsecase),
		Directory:  controllers.NewDirectoryController(bootstrap.Logger, directoryUsecase),
	})
}

func startBookingSweeper(bootstrap *config.Bootstrap, registry *booking.Registry, idleTimeout time.Duration) {
	interval := idleTimeout / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		registry.Run(ctx, interval, func(evicted int) {
			if evicted > 0 {
				bootstrap.Logger.Info("Booking wizards evicted after idle timeout", zap.Int("count", evicted))
			}
		})
	}()

	bootstrap.WorkerStop = func() {
		cancel()
		<-done
	}
}
