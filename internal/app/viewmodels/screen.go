package viewmodels

import (
	"medifax-client/internal/app/viewstate"
	"sync"

	"go.uber.org/zap"
)

const intentQueueCapacity = 16

// screen is shared by all view-models: one intent queue and the pipelines to
// tear down with the screen.
type screen struct {
	intents   *viewstate.IntentQueue
	closeOnce sync.Once
	closers   []func()
	waiters   []func()
	Log       *zap.Logger
}

func (s *screen) init(logger *zap.Logger) {
	s.intents = viewstate.NewIntentQueue(intentQueueCapacity)
	s.Log = logger
}

func register[T any](s *screen, p *viewstate.Pipeline[T]) *viewstate.Pipeline[T] {
	s.closers = append(s.closers, p.Close)
	s.waiters = append(s.waiters, p.Wait)
	return p
}

func (s *screen) Intents() <-chan viewstate.Intent {
	return s.intents.Intents()
}

func (s *screen) DrainIntents() []viewstate.Intent {
	return s.intents.Drain()
}

// Close stops every pipeline of the screen, then closes the intent queue.
func (s *screen) Close() {
	s.closeOnce.Do(func() {
		for _, closeFn := range s.closers {
			closeFn()
		}
		s.intents.Close()
	})
}

// Wait blocks until all commands started by the screen have returned.
func (s *screen) Wait() {
	for _, wait := range s.waiters {
		wait()
	}
}
