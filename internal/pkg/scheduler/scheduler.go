package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"reservation-dashboard/config"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	TypeReservationReminder = "reservation:reminder"

	defaultQueue = "default"
)

type Scheduler struct {
	Log       *otelzap.Logger
	client    *asynq.Client
	inspector *asynq.Inspector
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func New(cfg *config.RedisConfig, log *otelzap.Logger) *Scheduler {
	return &Scheduler{
		Log:       log,
		client:    asynq.NewClient(redisOpt(cfg)),
		inspector: asynq.NewInspector(redisOpt(cfg)),
	}
}

// Schedule enqueues a task under taskID, replacing a pending task with the same id.
func (s *Scheduler) Schedule(ctx context.Context, taskType, taskID string, payload []byte, at time.Time) error {
	task := asynq.NewTask(taskType, payload)
	opts := []asynq.Option{
		asynq.TaskID(taskID),
		asynq.Queue(defaultQueue),
		asynq.ProcessAt(at),
	}

	_, err := s.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		if err := s.Cancel(ctx, taskID); err != nil {
			return err
		}
		_, err = s.client.EnqueueContext(ctx, task, opts...)
	}
	if err != nil {
		return fmt.Errorf("enqueue task %s: %w", taskID, err)
	}

	s.Log.Ctx(ctx).Info(fmt.Sprintf("task %s scheduled at %s", taskID, at.Format(time.RFC3339)))
	return nil
}

func (s *Scheduler) Cancel(ctx context.Context, taskID string) error {
	err := s.inspector.DeleteTask(defaultQueue, taskID)
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

func (s *Scheduler) Close() error {
	if err := s.inspector.Close(); err != nil {
		return err
	}
	return s.client.Close()
}

// ReminderAt returns when the reminder for an event should fire: reminderDays before the event,
// or now when that moment already passed. ok is false once the event itself is not in the future.
func ReminderAt(event time.Time, reminderDays int, now time.Time) (time.Time, bool) {
	if !event.After(now) {
		return time.Time{}, false
	}
	at := event.AddDate(0, 0, -reminderDays)
	if at.Before(now) {
		at = now
	}
	return at, true
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(fmt.Sprintf(":%s", port), mux)
	s.Log.Ctx(ctx).Error(fmt.Sprintf("error start monitoring scheduler: %v", err))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				defaultQueue: 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("error start handler scheduler: %w", err)
	}
	return srv, nil
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
