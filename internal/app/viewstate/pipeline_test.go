package viewstate

import (
	"context"
	"errors"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPipeline() (*Pipeline[string], *IntentQueue) {
	intents := NewIntentQueue(16)
	return New[string]("test", intents, zap.NewNop()), intents
}

func value(s string) *string {
	return &s
}

func await(t *testing.T, p *Pipeline[string]) State[string] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := p.AwaitSettled(ctx)
	require.NoError(t, err)
	return state
}

func TestPipeline_InitialState(t *testing.T) {
	p, intents := newTestPipeline()
	defer p.Close()

	state := p.Snapshot()

	assert.Equal(t, Idle, state.Status)
	assert.Nil(t, state.Data)
	assert.Empty(t, intents.Drain())
}

func TestPipeline_Success(t *testing.T) {
	p, intents := newTestPipeline()
	defer p.Close()

	generation := p.Run(Command[string]{
		Name: "load",
		Call: func(ctx context.Context) (*string, error) { return value("done"), nil },
	})
	state := await(t, p)

	assert.Equal(t, Success, state.Status)
	assert.Equal(t, "done", *state.Data)
	assert.Equal(t, generation, state.Generation)
	assert.Empty(t, intents.Drain(), "a plain load emits nothing")
}

func TestPipeline_AbsentSuccess(t *testing.T) {
	p, _ := newTestPipeline()
	defer p.Close()

	p.Run(Command[string]{
		Name: "load",
		Call: func(ctx context.Context) (*string, error) { return nil, nil },
	})
	state := await(t, p)

	assert.Equal(t, Success, state.Status)
	assert.True(t, state.IsAbsent())
}

func TestPipeline_StatusIsAlwaysOneOfFour(t *testing.T) {
	p, _ := newTestPipeline()
	defer p.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Run(Command[string]{
				Name: "load",
				Call: func(ctx context.Context) (*string, error) {
					if i%2 == 0 {
						return nil, exceptions.ErrSendHTTPRequest(errors.New("down"))
					}
					return value("ok"), nil
				},
			})
		}()
		state := p.Snapshot()
		assert.Contains(t, []Status{Idle, Loading, Success, Error}, state.Status)
	}
	wg.Wait()
	p.Wait()

	state := p.Snapshot()
	assert.Contains(t, []Status{Success, Error}, state.Status)
}

func TestPipeline_SupersededResultIsDiscarded(t *testing.T) {
	p, intents := newTestPipeline()
	defer p.Close()

	release := make(chan struct{})
	p.Run(Command[string]{
		Name: "A",
		Call: func(ctx context.Context) (*string, error) {
			<-release
			return value("A"), nil
		},
		OnSuccess: func(*string) []Intent { return []Intent{PopBack()} },
	})
	p.Run(Command[string]{
		Name: "B",
		Call: func(ctx context.Context) (*string, error) { return value("B"), nil },
	})
	state := await(t, p)
	require.Equal(t, "B", *state.Data)

	close(release)
	p.Wait()

	state = p.Snapshot()
	assert.Equal(t, "B", *state.Data)
	assert.Equal(t, "B", state.Command)
	assert.Empty(t, intents.Drain(), "the superseded command must not emit")
}

func TestPipeline_NewCommandCancelsPrevious(t *testing.T) {
	p, _ := newTestPipeline()
	defer p.Close()

	cancelled := make(chan struct{})
	p.Run(Command[string]{
		Name: "A",
		Call: func(ctx context.Context) (*string, error) {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		},
	})
	p.Run(Command[string]{
		Name: "B",
		Call: func(ctx context.Context) (*string, error) { return value("B"), nil },
	})

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("previous command was not cancelled")
	}
	p.Wait()
	assert.Equal(t, "B", *p.Snapshot().Data)
}

func TestPipeline_ErrorIntentIsEmittedOnce(t *testing.T) {
	p, intents := newTestPipeline()
	defer p.Close()

	p.Run(Command[string]{
		Name: "load",
		Call: func(ctx context.Context) (*string, error) {
			return nil, exceptions.ErrRemoteNotFound(errors.New("status 404"), "/api/doctors/9")
		},
	})
	state := await(t, p)

	assert.Equal(t, Error, state.Status)
	assert.Equal(t, constvars.ErrClientDataNotFound, state.Message)
	assert.Equal(t, []Intent{Notify(constvars.ErrClientDataNotFound)}, intents.Drain())

	for i := 0; i < 3; i++ {
		assert.Equal(t, Error, p.Snapshot().Status)
	}
	assert.Empty(t, intents.Drain(), "reading the snapshot again must not re-emit")
}

func TestPipeline_TechnicalErrorsShowGenericMessage(t *testing.T) {
	p, intents := newTestPipeline()
	defer p.Close()

	p.Run(Command[string]{
		Name: "load",
		Call: func(ctx context.Context) (*string, error) {
			return nil, exceptions.ErrDecodeResponse(errors.New("unexpected token"), constvars.ResourceDoctor)
		},
	})
	state := await(t, p)

	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, state.Message)
	assert.NotContains(t, state.Message, "unexpected token")
	assert.Len(t, intents.Drain(), 1)
}

func TestPipeline_AuthErrorRedirect(t *testing.T) {
	authFailure := func(ctx context.Context) (*string, error) {
		return nil, exceptions.ErrRemoteUnauthorized(errors.New("status 401"), "/api/me")
	}

	t.Run("Redirects When Asked", func(t *testing.T) {
		p, intents := newTestPipeline()
		defer p.Close()

		p.Run(Command[string]{Name: "me", Call: authFailure, RedirectOnAuthError: true})
		await(t, p)

		assert.Equal(t, []Intent{Notify(constvars.ErrClientNotLoggedIn), NavigateTo(RouteSignIn)}, intents.Drain())
	})

	t.Run("Redirect Never Split From Its Notification", func(t *testing.T) {
		intents := NewIntentQueue(2)
		p := New[string]("test", intents, zap.NewNop())
		defer p.Close()
		require.True(t, intents.Push(Notify("old")))

		p.Run(Command[string]{Name: "me", Call: authFailure, RedirectOnAuthError: true})
		await(t, p)

		assert.Equal(t, []Intent{Notify("old")}, intents.Drain())

		p.Run(Command[string]{Name: "me", Call: authFailure, RedirectOnAuthError: true})
		await(t, p)

		assert.Equal(t, []Intent{Notify(constvars.ErrClientNotLoggedIn), NavigateTo(RouteSignIn)}, intents.Drain())
	})

	t.Run("Notify Only Otherwise", func(t *testing.T) {
		p, intents := newTestPipeline()
		defer p.Close()

		p.Run(Command[string]{Name: "login", Call: authFailure})
		await(t, p)

		assert.Equal(t, []Intent{Notify(constvars.ErrClientNotLoggedIn)}, intents.Drain())
	})
}

func TestPipeline_NothingAppliesAfterClose(t *testing.T) {
	p, intents := newTestPipeline()

	release := make(chan struct{})
	p.Run(Command[string]{
		Name: "create",
		Call: func(ctx context.Context) (*string, error) {
			<-release
			return value("late"), nil
		},
		OnSuccess: func(*string) []Intent { return []Intent{PopBack()} },
	})
	before := p.Snapshot()

	p.Close()
	close(release)
	p.Wait()

	assert.Equal(t, before, p.Snapshot())
	assert.Empty(t, intents.Drain())
	assert.Equal(t, uint64(0), p.Run(Command[string]{
		Name: "again",
		Call: func(ctx context.Context) (*string, error) { return value("x"), nil },
	}))
	assert.Equal(t, before, p.Snapshot())
}

func TestPipeline_Changes(t *testing.T) {
	closedWithin := func(ch <-chan struct{}) bool {
		select {
		case <-ch:
			return true
		case <-time.After(2 * time.Second):
			return false
		}
	}

	p, _ := newTestPipeline()
	release := make(chan struct{})

	idle := p.Changes()
	p.Run(Command[string]{
		Name: "load",
		Call: func(ctx context.Context) (*string, error) {
			<-release
			return value("done"), nil
		},
	})
	require.True(t, closedWithin(idle), "entering Loading is a change")
	assert.Equal(t, Loading, p.Snapshot().Status)

	loading := p.Changes()
	select {
	case <-loading:
		t.Fatal("no change happened while the command is still running")
	default:
	}
	close(release)
	require.True(t, closedWithin(loading), "applying the result is a change")
	assert.Equal(t, Success, p.Snapshot().Status)

	settled := p.Changes()
	p.Close()
	require.True(t, closedWithin(settled), "Close wakes up listeners")
	assert.True(t, closedWithin(p.Changes()), "after Close the channel stays closed")
}

func TestPipeline_Reject(t *testing.T) {
	p, intents := newTestPipeline()
	defer p.Close()

	p.Reject("create", exceptions.ErrDoctorNotAvailable(nil))

	state := p.Snapshot()
	assert.Equal(t, Error, state.Status)
	assert.Equal(t, constvars.ErrClientDoctorNotAvailable, state.Message)
	assert.Equal(t, []Intent{Notify(constvars.ErrClientDoctorNotAvailable)}, intents.Drain())
}

func TestPipeline_AwaitSettled(t *testing.T) {
	t.Run("Context Ends First", func(t *testing.T) {
		p, _ := newTestPipeline()
		defer p.Close()
		p.Run(Command[string]{
			Name: "slow",
			Call: func(ctx context.Context) (*string, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		state, err := p.AwaitSettled(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, Loading, state.Status)
	})

	t.Run("Closed While Loading", func(t *testing.T) {
		p, _ := newTestPipeline()
		p.Run(Command[string]{
			Name: "slow",
			Call: func(ctx context.Context) (*string, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		})
		time.AfterFunc(20*time.Millisecond, p.Close)

		_, err := p.AwaitSettled(context.Background())

		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestIntentQueue(t *testing.T) {
	t.Run("Delivered Once", func(t *testing.T) {
		q := NewIntentQueue(4)
		require.True(t, q.Push(PopBack(), NavigateTo(RouteHome)))

		assert.Equal(t, PopBack(), <-q.Intents())
		assert.Equal(t, []Intent{NavigateTo(RouteHome)}, q.Drain())
		assert.Empty(t, q.Drain())
	})

	t.Run("Closed Queue Drops", func(t *testing.T) {
		q := NewIntentQueue(4)
		q.Close()

		assert.False(t, q.Push(PopBack()))
		_, ok := <-q.Intents()
		assert.False(t, ok)
	})

	t.Run("Full Queue Drops", func(t *testing.T) {
		q := NewIntentQueue(1)

		assert.True(t, q.Push(PopBack()))
		assert.False(t, q.Push(PopBack()))
	})

	t.Run("Batch Without Room Is Dropped Whole", func(t *testing.T) {
		q := NewIntentQueue(2)
		require.True(t, q.Push(Notify("old")))

		assert.False(t, q.Push(Notify("new"), NavigateTo(RouteSignIn)))
		assert.Equal(t, []Intent{Notify("old")}, q.Drain())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, `notify("hello")`, Notify("hello").String())
		assert.Equal(t, "navigate(sign_in)", NavigateTo(RouteSignIn).String())
		assert.Equal(t, "pop_back", PopBack().String())
	})
}
