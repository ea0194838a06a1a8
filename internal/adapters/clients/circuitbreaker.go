package clients

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// State is the position of a CircuitBreaker.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// CircuitBreakerConfig sets when an upstream is cut off and how it is let
// back in.
type CircuitBreakerConfig struct {
	// MaxFailures consecutive failures open the circuit.
	MaxFailures int

	// Timeout is the cool-down spent open before a probe is let through.
	Timeout time.Duration

	// HalfOpenLimit caps concurrent probes and is also the number of probe
	// successes needed to close again.
	HalfOpenLimit int

	Clock clockwork.Clock
}

// CircuitBreaker cuts off an upstream (gemini, mapbox, bluesky) after
// repeated failures so handlers fail fast and readiness reports it.
//
//	closed    --MaxFailures failures-->  open
//	open      --Timeout elapsed------->  half-open
//	half-open --HalfOpenLimit successes-> closed
//	half-open --any failure----------->  open
type CircuitBreaker struct {
	cfg   CircuitBreakerConfig
	clock clockwork.Clock

	mu       sync.Mutex
	state    State
	streak   int // failures while closed, successes while half-open
	inFlight int // probes outstanding while half-open
	openedAt time.Time
	onChange func(from, to State)
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CircuitBreaker{cfg: cfg, clock: clock}
}

// OnStateChange registers fn to run, on its own goroutine, after every
// transition.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	cb.onChange = fn
	cb.mu.Unlock()
}

// Allow reports whether a call may go upstream. A true result while
// half-open reserves a probe slot, which RecordSuccess or RecordFailure
// releases.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.clock.Since(cb.openedAt) < cb.cfg.Timeout {
			return false
		}
		cb.moveTo(StateHalfOpen)
	}

	if cb.state == StateHalfOpen {
		if cb.inFlight >= max(cb.cfg.HalfOpenLimit, 1) {
			return false
		}
		cb.inFlight++
	}
	return true
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.streak = 0
	case StateHalfOpen:
		cb.inFlight--
		cb.streak++
		if cb.streak >= cb.cfg.HalfOpenLimit {
			cb.moveTo(StateClosed)
		}
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.streak++
		if cb.streak >= cb.cfg.MaxFailures {
			cb.moveTo(StateOpen)
		}
	case StateHalfOpen:
		cb.inFlight--
		cb.moveTo(StateOpen)
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Err returns ErrCircuitOpen while the breaker is open and cooling down. The
// upstream adapters report it from their readiness check.
func (cb *CircuitBreaker) Err() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == StateOpen && cb.clock.Since(cb.openedAt) < cb.cfg.Timeout {
		return ErrCircuitOpen
	}
	return nil
}

// moveTo must be called with mu held.
func (cb *CircuitBreaker) moveTo(next State) {
	prev := cb.state
	if prev == next {
		return
	}
	cb.state = next
	cb.streak = 0
	switch next {
	case StateOpen:
		cb.openedAt = cb.clock.Now()
	case StateClosed:
		cb.inFlight = 0
	}
	if fn := cb.onChange; fn != nil {
		go fn(prev, next)
	}
}
