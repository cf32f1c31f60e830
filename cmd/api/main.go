package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/remindengine/core/internal/config"
	"github.com/remindengine/core/internal/database"
	"github.com/remindengine/core/internal/handler"
	"github.com/remindengine/core/internal/jobs"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/push"
	"github.com/remindengine/core/internal/repository"
	"github.com/remindengine/core/internal/scheduler"
	"github.com/remindengine/core/internal/service"
	"github.com/remindengine/core/pkg/jwt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	jwtManager := jwt.NewManager(cfg.AuthSecret)

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	occurrenceRepo := repository.NewOccurrenceRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	pushSubRepo := repository.NewPushSubscriptionRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)

	maintainer := service.NewOccurrenceMaintainer(occurrenceRepo, todoRepo, log)

	authService := service.NewAuthService(userRepo, jwtManager)
	todoService := service.NewTodoService(todoRepo, occurrenceRepo, reminderRepo, tagRepo, preferencesRepo, maintainer, log)
	reminderService := service.NewReminderService(reminderRepo, todoRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo)

	pushClient := push.NewClient(push.Config{
		VAPIDPublicKey:  cfg.VAPIDPublicKey,
		VAPIDPrivateKey: cfg.VAPIDPrivateKey,
		ContactEmail:    cfg.VAPIDContact,
	}, log)
	pushService := service.NewPushService(pushSubRepo, pushClient)
	pushDispatcher := push.NewDispatcher(pushClient, pushSubRepo, log)
	if !pushClient.Enabled() {
		log.Warn("push notifications disabled: VAPID keys not fully configured")
	}

	schedulerHost := scheduler.NewHost(log)
	registerJobs(schedulerHost, log,
		jobs.NewReminderDispatcherJob(reminderRepo, todoRepo, notificationRepo, pushDispatcher, log),
		jobs.NewOccurrenceMaintainerJob(todoRepo, maintainer, log),
		jobs.NewDigestDispatcherJob(preferencesRepo, todoRepo, occurrenceRepo, notificationRepo, log),
		jobs.NewRetentionSweeperJob(notificationRepo, log),
	)
	schedulerHost.Start(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	rateLimiter := middleware.NewRateLimiter(100, time.Minute)
	r.Use(middleware.RateLimitMiddleware(rateLimiter))

	handler.RegisterRoutes(r, &handler.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Tags:          handler.NewTagHandler(tagRepo),
		Todos:         handler.NewTodoHandler(todoService, todoRepo),
		Occurrences:   handler.NewOccurrenceHandler(todoService, occurrenceRepo),
		Reminders:     handler.NewReminderHandler(reminderService),
		Notifications: handler.NewNotificationHandler(notificationService),
		Push:          handler.NewPushHandler(pushService),
		Preferences:   handler.NewPreferencesHandler(preferencesService),
	}, jwtManager)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("http server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", zap.Error(err))
	}

	schedulerHost.Stop()
	return nil
}

// registerJobs wires each job onto its named schedule (§5); a registration
// error is fatal since it means a malformed cron expression, not a runtime
// fault, and should never reach a running server.
func registerJobs(
	host *scheduler.Host,
	log *zap.Logger,
	dispatcher *jobs.ReminderDispatcherJob,
	maintainer *jobs.OccurrenceMaintainerJob,
	digest *jobs.DigestDispatcherJob,
	sweeper *jobs.RetentionSweeperJob,
) {
	must := func(name, spec string, fn scheduler.Job) {
		if err := host.Register(name, spec, fn); err != nil {
			panic(fmt.Sprintf("failed to register job %q: %v", name, err))
		}
	}

	must("reminder_dispatcher", scheduler.DispatcherSchedule, func(ctx context.Context) {
		if _, err := dispatcher.Run(ctx); err != nil {
			log.Error("reminder dispatcher tick failed", zap.Error(err))
		}
	})
	must("occurrence_maintainer", scheduler.MaintainerSchedule, func(ctx context.Context) {
		if _, err := maintainer.Run(ctx); err != nil {
			log.Error("occurrence maintainer tick failed", zap.Error(err))
		}
	})
	must("digest_dispatcher", scheduler.DigestSchedule, func(ctx context.Context) {
		if _, err := digest.Run(ctx); err != nil {
			log.Error("digest dispatcher tick failed", zap.Error(err))
		}
	})
	must("retention_sweeper", scheduler.SweeperSchedule, func(ctx context.Context) {
		if _, err := sweeper.Run(ctx); err != nil {
			log.Error("retention sweeper tick failed", zap.Error(err))
		}
	})
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
