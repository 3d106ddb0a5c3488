package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule каждые 5 минут
const DefaultSchedule = "*/5 * * * *"

// Completer переводит закончившиеся бронирования в статус completed
type Completer interface {
	CompleteFinished(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодически завершает прошедшие бронирования по cron расписанию
type Scheduler struct {
	completer Completer
	schedule  string
	cron      *cron.Cron
	logger    Logger

	mu      sync.Mutex
	running bool
}

// New создает планировщик
// Пустое расписание заменяется на DefaultSchedule
func New(completer Completer, schedule string, logger Logger) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Scheduler{
		completer: completer,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start запускает планировщик
// Останавливается при отмене ctx или вызове Stop
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule completion job: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("Scheduler: started with schedule=%q", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// RunOnce выполняет один проход завершения бронирований
func (s *Scheduler) RunOnce(ctx context.Context) {
	n, err := s.completer.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("Scheduler: completion run failed: %v", err)
		return
	}
	if n > 0 {
		s.logger.Info("Scheduler: %d bookings marked as completed", n)
	}
}

// Stop останавливает планировщик и ждет завершения текущего прохода
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("Scheduler: stopped")
}

// IsRunning возвращает true, если планировщик запущен
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun возвращает время следующего прохода или nil, если планировщик не запущен
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
