// Package page models each static page as a small explicit state machine
// driven by discrete events: guard decision, input changes, submission, and
// the asynchronous response. The machine is independent of any UI toolkit;
// the controllers translate surface events into machine transitions.
package page

import "errors"

// State is the lifecycle position of a page.
type State string

const (
	StateGuarded    State = "guarded"    // guard ran, page may initialize
	StateIdle       State = "idle"       // waiting for user input
	StateSubmitting State = "submitting" // one request in flight
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	StateRedirected State = "redirected" // guard rejected, page is dead
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[State][]State{
	StateGuarded:    {StateIdle, StateRedirected},
	StateIdle:       {StateSubmitting},
	StateSubmitting: {StateSucceeded, StateFailed},
	StateSucceeded:  {StateIdle},
	StateFailed:     {StateIdle},
}

var ErrInvalidTransition = errors.New("invalid page state transition")

// CanTransitionTo reports whether moving from s to next is valid.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Machine tracks one page's state. Pages are single-threaded by
// construction (one user action in flight at a time), so Machine does no
// locking.
type Machine struct {
	state State
}

// NewMachine starts in StateGuarded: nothing may happen before the guard.
func NewMachine() *Machine {
	return &Machine{state: StateGuarded}
}

func (m *Machine) State() State {
	return m.state
}

// To transitions the machine, rejecting anything validTransitions does not
// allow. Rejection leaves the state unchanged.
func (m *Machine) To(next State) error {
	if !m.state.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	m.state = next
	return nil
}
