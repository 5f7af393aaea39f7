package countryatlas

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SessionState is one observable snapshot. Result is set only in PhaseLoaded
// and Message only in PhaseFailed.
type SessionState struct {
	Phase   Phase
	Result  GroupedResult
	Message string
}

// Session runs one aggregation and exposes its lifecycle to observers. It
// starts in PhaseLoading and makes at most one transition, to PhaseLoaded or
// PhaseFailed. A canceled run publishes nothing; retrying takes a new Session.
type Session struct {
	id         uuid.UUID
	aggregator *Aggregator
	logger     Logger

	mu    sync.RWMutex
	state SessionState
	subs  []chan SessionState
	ran   bool
}

func NewSession(aggregator *Aggregator, opts ...SessionOption) *Session {
	s := &Session{
		id:         uuid.New(),
		aggregator: aggregator,
		logger:     NopLogger{},
		state:      SessionState{Phase: PhaseLoading},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Updates returns a channel that delivers the terminal state exactly once,
// even to subscribers that arrive after the transition happened.
func (s *Session) Updates() <-chan SessionState {
	ch := make(chan SessionState, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Phase != PhaseLoading {
		ch <- s.state
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}

// Run performs the aggregation and publishes the terminal state. It runs at
// most once per Session; later calls return nil without doing anything. When
// ctx is canceled before completion the session stays in PhaseLoading and
// subscribers receive nothing.
func (s *Session) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.ran {
		s.mu.Unlock()
		return nil
	}
	s.ran = true
	s.mu.Unlock()

	result, err := s.aggregator.Aggregate(ctx)
	if ctx.Err() != nil {
		s.logger.Info("session abandoned", "session_id", s.ID())
		return ctx.Err()
	}
	if err != nil {
		s.publish(SessionState{Phase: PhaseFailed, Message: describeFailure(err)})
		return err
	}

	s.publish(SessionState{Phase: PhaseLoaded, Result: result})
	return nil
}

func (s *Session) publish(state SessionState) {
	s.mu.Lock()
	s.state = state
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, ch := range subs {
		ch <- state
	}

	s.logger.Info("session state published", "session_id", s.ID(), "phase", state.Phase.String())
}

func describeFailure(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		if te.StatusCode != 0 {
			return fmt.Sprintf("the country directory could not be loaded: the server answered with status %d", te.StatusCode)
		}
		return "the country directory could not be loaded: the service is unreachable"
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return "the country directory could not be loaded: the service answered in an unexpected format"
	}
	return fmt.Sprintf("the country directory could not be loaded: %v", err)
}
