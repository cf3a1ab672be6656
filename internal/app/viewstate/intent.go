package viewstate

import (
	"fmt"
	"sync"
)

type IntentKind string

const (
	IntentNotify   IntentKind = "notify"
	IntentNavigate IntentKind = "navigate"
	IntentPopBack  IntentKind = "pop_back"
)

type Route string

const (
	RouteSignIn       Route = "sign_in"
	RouteHome         Route = "home"
	RouteLogout       Route = "logout"
	RouteAppointments Route = "appointments"
)

// Intent is a one-shot side effect for the view: a toast, a navigation or a
// pop of the current screen.
type Intent struct {
	Kind    IntentKind
	Route   Route
	Message string
}

func Notify(message string) Intent {
	return Intent{Kind: IntentNotify, Message: message}
}

func NavigateTo(route Route) Intent {
	return Intent{Kind: IntentNavigate, Route: route}
}

func PopBack() Intent {
	return Intent{Kind: IntentPopBack}
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentNotify:
		return fmt.Sprintf("notify(%q)", i.Message)
	case IntentNavigate:
		return fmt.Sprintf("navigate(%s)", i.Route)
	default:
		return string(i.Kind)
	}
}

// IntentQueue delivers every pushed intent to exactly one reader.
type IntentQueue struct {
	mu     sync.Mutex
	ch     chan Intent
	closed bool
}

func NewIntentQueue(capacity int) *IntentQueue {
	if capacity <= 0 {
		capacity = 16
	}
	return &IntentQueue{ch: make(chan Intent, capacity)}
}

// Push delivers intents as one batch: either all of them are queued or, when
// the queue is closed or lacks room for the whole batch, none is.
func (q *IntentQueue) Push(intents ...Intent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || cap(q.ch)-len(q.ch) < len(intents) {
		return false
	}
	for _, intent := range intents {
		q.ch <- intent
	}
	return true
}

func (q *IntentQueue) Intents() <-chan Intent {
	return q.ch
}

// Drain returns whatever is pending without blocking.
func (q *IntentQueue) Drain() []Intent {
	var drained []Intent
	for {
		select {
		case intent, ok := <-q.ch:
			if !ok {
				return drained
			}
			drained = append(drained, intent)
		default:
			return drained
		}
	}
}

func (q *IntentQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}
