package viewstate

type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// State is what a screen renders. Data may be nil on Success when the backend
// had nothing to return.
type State[T any] struct {
	Status     Status
	Data       *T
	Message    string
	Command    string
	Generation uint64
}

func (s State[T]) IsSettled() bool {
	return s.Status == Success || s.Status == Error
}

func (s State[T]) IsAbsent() bool {
	return s.Status == Success && s.Data == nil
}
