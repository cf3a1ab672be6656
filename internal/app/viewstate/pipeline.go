package viewstate

import (
	"context"
	"errors"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("viewstate: pipeline closed")

// Command is one unit of work issued by a screen.
type Command[T any] struct {
	Name string
	Call func(ctx context.Context) (*T, error)
	// OnSuccess returns the intents emitted once the result is applied.
	OnSuccess func(data *T) []Intent
	// RedirectOnAuthError also sends the view to sign in when Call fails
	// with an auth error.
	RedirectOnAuthError bool
}

// Pipeline holds the state of one screen section. Only the result of the
// latest command is ever applied, and nothing is applied after Close.
type Pipeline[T any] struct {
	name       string
	mu         sync.Mutex
	state      State[T]
	generation uint64
	cancel     context.CancelFunc
	root       context.Context
	rootCancel context.CancelFunc
	closed     bool
	changed    chan struct{}
	intents    *IntentQueue
	wg         sync.WaitGroup
	Log        *zap.Logger
}

func New[T any](name string, intents *IntentQueue, logger *zap.Logger) *Pipeline[T] {
	root, rootCancel := context.WithCancel(context.Background())
	return &Pipeline[T]{
		name:       name,
		state:      State[T]{Status: Idle},
		root:       root,
		rootCancel: rootCancel,
		changed:    make(chan struct{}),
		intents:    intents,
		Log:        logger,
	}
}

// Run cancels the command in flight, enters Loading and executes cmd on its
// own goroutine. It returns the generation of cmd, 0 once closed.
func (p *Pipeline[T]) Run(cmd Command[T]) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0
	}

	if p.cancel != nil {
		p.cancel()
	}
	p.generation++
	generation := p.generation

	ctx, cancel := context.WithCancel(utils.WithRequestID(p.root))
	p.cancel = cancel
	p.setLocked(State[T]{Status: Loading, Command: cmd.Name, Generation: generation})

	p.Log.Debug("Pipeline.Run command started",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPipelineKey, p.name),
		zap.String(constvars.LoggingCommandKey, cmd.Name),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)

	p.wg.Add(1)
	go p.execute(ctx, cancel, generation, cmd)
	return generation
}

func (p *Pipeline[T]) execute(ctx context.Context, cancel context.CancelFunc, generation uint64, cmd Command[T]) {
	defer p.wg.Done()
	defer cancel()

	requestID := utils.GetRequestID(ctx)
	start := time.Now()
	data, err := cmd.Call(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || generation != p.generation {
		p.Log.Debug("Pipeline.Run discarded superseded result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPipelineKey, p.name),
			zap.String(constvars.LoggingCommandKey, cmd.Name),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
			zap.Uint64(constvars.LoggingLatestGenKey, p.generation),
			zap.Bool(constvars.LoggingClosedKey, p.closed),
		)
		return
	}

	if err != nil {
		p.failLocked(requestID, cmd.Name, generation, err, cmd.RedirectOnAuthError)
		return
	}

	p.setLocked(State[T]{Status: Success, Data: data, Command: cmd.Name, Generation: generation})
	p.Log.Info("Pipeline.Run command succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPipelineKey, p.name),
		zap.String(constvars.LoggingCommandKey, cmd.Name),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	if cmd.OnSuccess != nil {
		p.pushLocked(cmd.OnSuccess(data)...)
	}
}

// Reject puts the pipeline in Error for input refused before any call was
// made. A command in flight is cancelled.
func (p *Pipeline[T]) Reject(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.failLocked("", name, p.generation, err, false)
}

func (p *Pipeline[T]) failLocked(requestID, name string, generation uint64, err error, redirectOnAuth bool) {
	message := exceptions.ClientMessageOf(err)
	kind := exceptions.KindOf(err)

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPipelineKey, p.name),
		zap.String(constvars.LoggingCommandKey, name),
		zap.String(constvars.LoggingErrorKindKey, string(kind)),
		zap.Error(err),
	}
	switch kind {
	case exceptions.KindNetwork, exceptions.KindDecode, exceptions.KindInvariant, exceptions.KindUnknown:
		p.Log.Error("Pipeline.Run command failed", fields...)
	default:
		p.Log.Info("Pipeline.Run command failed", fields...)
	}

	p.setLocked(State[T]{Status: Error, Message: message, Command: name, Generation: generation})

	intents := []Intent{Notify(message)}
	if redirectOnAuth && kind == exceptions.KindAuth {
		intents = append(intents, NavigateTo(RouteSignIn))
	}
	p.pushLocked(intents...)
}

func (p *Pipeline[T]) pushLocked(intents ...Intent) {
	if len(intents) == 0 || p.intents == nil {
		return
	}
	if !p.intents.Push(intents...) {
		p.Log.Warn("Pipeline intent dropped",
			zap.String(constvars.LoggingPipelineKey, p.name),
			zap.Int(constvars.LoggingIntentCountKey, len(intents)),
		)
	}
}

func (p *Pipeline[T]) setLocked(state State[T]) {
	p.state = state
	close(p.changed)
	p.changed = make(chan struct{})
}

func (p *Pipeline[T]) Snapshot() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Changes returns a channel closed at the next state change or at Close.
func (p *Pipeline[T]) Changes() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.changed
}

// AwaitSettled waits until the pipeline is no longer Loading.
func (p *Pipeline[T]) AwaitSettled(ctx context.Context) (State[T], error) {
	for {
		p.mu.Lock()
		state, changed, closed := p.state, p.changed, p.closed
		p.mu.Unlock()

		if state.Status != Loading {
			return state, nil
		}
		if closed {
			return state, ErrClosed
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return state, ctx.Err()
		}
	}
}

// Close cancels in-flight work. Results arriving later are dropped.
func (p *Pipeline[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.cancel != nil {
		p.cancel()
	}
	p.rootCancel()
	close(p.changed)
	p.changed = make(chan struct{})
	close(p.changed)

	p.Log.Debug("Pipeline closed",
		zap.String(constvars.LoggingPipelineKey, p.name),
		zap.Uint64(constvars.LoggingGenerationKey, p.generation),
	)
}

// Wait blocks until every started command has returned.
func (p *Pipeline[T]) Wait() {
	p.wg.Wait()
}
