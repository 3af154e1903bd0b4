package engine

import (
	"context"
	"sync"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
)

// State is what a presentation layer shows for a session.
type State int

const (
	// StateEmpty means no computation has completed yet.
	StateEmpty State = iota
	// StateFailed means the latest computation returned an error.
	StateFailed
	// StateNoSelection means the latest computation selected zero features.
	StateNoSelection
	// StateReady means the latest computation has something to display.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	case StateNoSelection:
		return "no_selection"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is the result of one submission.
type Snapshot struct {
	Generation uint64
	Outcome    *Outcome
	Err        error
}

// State classifies the snapshot.
func (s *Snapshot) State() State {
	switch {
	case s == nil:
		return StateEmpty
	case s.Err != nil:
		return StateFailed
	case s.Outcome != nil && s.Outcome.Intervals != nil && s.Outcome.Intervals.NoSelection():
		return StateNoSelection
	default:
		return StateReady
	}
}

// RunFunc performs one computation.
type RunFunc func(ctx context.Context, req Request, logger log.Logger) (*Outcome, error)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the session logger.
func WithSessionLogger(l log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithRunFunc replaces Run as the computation a session performs.
func WithRunFunc(fn RunFunc) SessionOption {
	return func(s *Session) {
		s.run = fn
	}
}

// Session runs at most one computation at a time. Submitting cancels the
// in-flight computation, and a result whose generation is no longer current is
// never published.
type Session struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	latest     *Snapshot
	closed     bool

	run    RunFunc
	logger log.Logger
	wg     sync.WaitGroup
}

// NewSession creates an idle session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{run: Run}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.GetLogger()
	}
	s.logger = s.logger.With(log.ComponentKey, "engine.Session")
	return s
}

// Submit starts req in the background and returns its generation together with
// a channel that receives exactly one Snapshot. A superseded submission
// receives an error matching ErrStaleResult.
func (s *Session) Submit(ctx context.Context, req Request) (uint64, <-chan Snapshot) {
	result := make(chan Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		result <- Snapshot{Err: errors.Wrap(errors.ErrStaleResult, "session closed")}
		return 0, result
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	runCtx, cancel := context.WithCancel(ctx)
	prev := s.done
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(done)
		defer cancel()

		// 前の計算の終了を待ってから開始する
		if prev != nil {
			select {
			case <-prev:
			case <-runCtx.Done():
			}
		}

		var out *Outcome
		err := runCtx.Err()
		if err == nil {
			err = errors.SafeExecute("engine.Session.run", func() error {
				var runErr error
				out, runErr = s.run(runCtx, req, s.logger.With(log.SessionGenerationKey, gen))
				return runErr
			})
		}
		result <- s.publish(gen, out, err)
	}()

	return gen, result
}

func (s *Session) publish(gen uint64, out *Outcome, err error) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.closed {
		s.logger.Debug("stale result discarded", log.SessionGenerationKey, gen)
		return Snapshot{Generation: gen, Err: errors.Wrapf(errors.ErrStaleResult, "generation %d superseded (current %d)", gen, s.generation)}
	}
	snap := &Snapshot{Generation: gen, Outcome: out, Err: err}
	if err != nil {
		snap.Outcome = nil
		s.logger.Warn("computation failed", err, log.SessionGenerationKey, gen)
	}
	s.latest = snap
	return *snap
}

// Latest returns the most recent published snapshot, or nil.
func (s *Session) Latest() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return nil
	}
	snap := *s.latest
	return &snap
}

// State classifies the latest published snapshot.
func (s *Session) State() State {
	return s.Latest().State()
}

// Generation returns the generation of the most recent submission.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Wait blocks until no computation is in flight.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels the in-flight computation and waits for it. Later submissions
// fail immediately.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}
