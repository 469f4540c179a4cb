package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/streetcab/dispatch/internal/pkg/logger"
)

// Task is a named periodic job. Tasks are independent: one task failing or
// panicking never affects another, and a failed tick resumes on the next one.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler owns a set of named periodic tasks tied to process lifecycle
type Scheduler struct {
	tasks       []Task
	tickTimeout time.Duration
	stop        chan struct{}
	wg          sync.WaitGroup
	started     bool
	mu          sync.Mutex
}

// New creates a scheduler. tickTimeout bounds a single run of any task.
func New(tickTimeout time.Duration) *Scheduler {
	return &Scheduler{
		tickTimeout: tickTimeout,
		stop:        make(chan struct{}),
	}
}

// Register adds a task. Must be called before Start.
func (s *Scheduler) Register(task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

// Start launches one goroutine per registered task
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.runLoop(task)
	}

	logger.Info("Scheduler started", logger.Int("tasks", len(s.tasks)))
}

// Stop signals all task loops to exit and waits for them
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	close(s.stop)
	s.wg.Wait()
	logger.Info("Scheduler stopped")
}

func (s *Scheduler) runLoop(task Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.runOnce(task)
		}
	}
}

// runOnce executes a single tick with panic isolation and a bounded context
func (s *Scheduler) runOnce(task Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Sweep task panicked",
				logger.String("task", task.Name),
				logger.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.tickTimeout)
	defer cancel()

	start := time.Now()
	if err := task.Run(ctx); err != nil {
		logger.Error("Sweep task failed",
			logger.String("task", task.Name),
			logger.Duration("elapsed", time.Since(start)),
			logger.Err(err))
		return
	}

	logger.Debug("Sweep task completed",
		logger.String("task", task.Name),
		logger.Duration("elapsed", time.Since(start)))
}
