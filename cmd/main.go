package main

import (
	"context"
	"fmt"

	"reservation-dashboard/config"
	"reservation-dashboard/internal/module/reservation/handler"
	"reservation-dashboard/internal/module/reservation/repositories"
	"reservation-dashboard/internal/module/reservation/usecases"
	"reservation-dashboard/internal/pkg/http"
	"reservation-dashboard/internal/pkg/httpclient"
	log_internal "reservation-dashboard/internal/pkg/log"
	"reservation-dashboard/internal/pkg/messagestream"
	"reservation-dashboard/internal/pkg/middleware"
	"reservation-dashboard/internal/pkg/redis"
	"reservation-dashboard/internal/pkg/scheduler"
	"reservation-dashboard/internal/pkg/tokenstore"
	router "reservation-dashboard/internal/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, shutdown := initService(cfg)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout, shutdown...)
}

func initService(cfg *config.Config) (*fiber.App, []func()) {
	ctx := context.Background()
	var shutdown []func()

	// init logger
	logZap := log_internal.SetupLogger(cfg.Logger.Level)
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init token store
	var tokens tokenstore.Store
	if cfg.Redis.Enabled() {
		redisClient := redis.SetupClient(&cfg.Redis)
		tokens = tokenstore.NewRedis(redisClient)
		shutdown = append(shutdown, func() {
			if err := redisClient.Close(); err != nil {
				logger.Ctx(ctx).Error(fmt.Sprintf("error close redis: %v", err))
			}
		})
	} else {
		logger.Ctx(ctx).Warn("redis not configured, sessions are kept in memory")
		tokens = tokenstore.NewMemory()
	}

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal(fmt.Sprintf("Failed to create publisher: %v", err))
	}
	shutdown = append(shutdown, func() {
		if err := publisher.Close(); err != nil {
			logger.Ctx(ctx).Error(fmt.Sprintf("error close publisher: %v", err))
		}
	})
	notifier := messagestream.NewNotifier(publisher, cfg.MessageStream.NotificationTopic, logger)

	// init scheduler
	var reminders usecases.ReminderScheduler
	var sch *scheduler.Scheduler
	if cfg.Scheduler.Enabled && cfg.Redis.Enabled() {
		sch = scheduler.New(&cfg.Redis, logger)
		reminders = sch
	}

	reservationRepo := repositories.New(logger, httpClient, &cfg.ReservationAPI, tokens)
	reservationUsecase := usecases.New(reservationRepo, logger, tokens, notifier, reminders, cfg.Session.TTL)

	reservationHandler := handler.ReservationHandler{
		Log:       logger,
		Validator: validator.New(),
		Usecase:   reservationUsecase,
	}
	m := middleware.Middleware{
		Log: logger,
	}

	if sch != nil {
		srv, err := sch.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
			[]string{scheduler.TypeReservationReminder},
			[]func(ctx context.Context, t *asynq.Task) error{reservationHandler.SendReminder},
		)
		if err != nil {
			logger.Ctx(ctx).Fatal(err.Error())
		}
		go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)

		shutdown = append(shutdown, func() {
			srv.Shutdown()
			if err := sch.Close(); err != nil {
				logger.Ctx(ctx).Error(fmt.Sprintf("error close scheduler: %v", err))
			}
		})
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &reservationHandler, &m)

	return r, shutdown

}
