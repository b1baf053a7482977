package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/shopsim/internal/config"
	"github.com/mamadbah2/shopsim/internal/service/simulation"
)

const publishTimeout = 30 * time.Second

// DayRunner advances a simulation one day at a time.
type DayRunner interface {
	RunDay() (simulation.DayOutcome, error)
	GameOver() bool
}

// Publisher receives the outcome of every day the scheduler runs.
type Publisher interface {
	Publish(ctx context.Context, outcome simulation.DayOutcome) error
}

// Scheduler plays the simulation unattended, running one day per cron tick
// until the day horizon is reached or the game is over.
type Scheduler struct {
	cron      *cron.Cron
	cfg       config.AutoplayConfig
	days      int
	engine    DayRunner
	publisher Publisher
	onDay     func(simulation.DayOutcome)
	logger    *zap.Logger

	mu   sync.Mutex
	ran  int
	err  error
	done chan struct{}
	once sync.Once
}

// NewScheduler creates a new scheduler instance. onDay, when set, is called
// after each day has been published.
func NewScheduler(cfg config.AutoplayConfig, days int, engine DayRunner, publisher Publisher, onDay func(simulation.DayOutcome), logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// The standard parser accepts 5-field expressions and descriptors such as "@every 2s".
	// Overlapping ticks are skipped so a slow sink never runs two days at once.
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger.Sugar()})))

	return &Scheduler{
		cron:      c,
		cfg:       cfg,
		days:      days,
		engine:    engine,
		publisher: publisher,
		onDay:     onDay,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start registers the day job and starts the scheduler.
func (s *Scheduler) Start() error {
	if s.cfg.CronSchedule == "" {
		return errors.New("autoplay schedule is empty")
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.tick); err != nil {
		return fmt.Errorf("schedule autoplay %q: %w", s.cfg.CronSchedule, err)
	}

	s.logger.Info("starting autoplay", zap.String("schedule", s.cfg.CronSchedule), zap.Int("days", s.days))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running day to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Done is closed once the run has ended.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that ended the run early, if any.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// DaysRun reports how many days the scheduler has completed.
func (s *Scheduler) DaysRun() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ran
}

// tick runs one day. Ticks never overlap: the cron chain skips a tick while
// the previous one runs, and mu only guards the run bookkeeping.
func (s *Scheduler) tick() {
	select {
	case <-s.done:
		return
	default:
	}

	outcome, err := s.engine.RunDay()
	if err != nil {
		s.logger.Error("autoplay day failed", zap.Error(err))
		s.finish(err)
		return
	}

	if s.publisher != nil {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := s.publisher.Publish(ctx, outcome); err != nil {
			s.logger.Warn("failed to publish day report", zap.Int("day", outcome.Result.DayNumber), zap.Error(err))
		}
		cancel()
	}

	if s.onDay != nil {
		s.onDay(outcome)
	}

	ran := s.recordDay()
	switch {
	case ran >= s.days:
		s.logger.Info("autoplay reached day horizon", zap.Int("days", ran))
		s.finish(nil)
	case s.engine.GameOver():
		s.logger.Info("autoplay ended: game over", zap.Int("days", ran))
		s.finish(nil)
	}
}

func (s *Scheduler) recordDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ran++
	return s.ran
}

func (s *Scheduler) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.done)
	})
}

// cronLogger routes cron's internal logging through zap.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
