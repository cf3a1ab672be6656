package fakes

import (
	"context"
	"sync"
)

// Hook runs before every fake operation. A non-nil error is returned to the
// caller as if the backend had answered with it.
type Hook func(ctx context.Context, operation string) error

type recorder struct {
	mu    sync.Mutex
	calls map[string]int
	Hook  Hook
}

func (r *recorder) record(ctx context.Context, operation string) error {
	r.mu.Lock()
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[operation]++
	hook := r.Hook
	r.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, operation); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (r *recorder) CallCount(operation string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[operation]
}

func (r *recorder) SetHook(hook Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Hook = hook
}
