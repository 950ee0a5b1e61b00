package page

import (
	"errors"
	"testing"
)

func TestMachine_HappyPath(t *testing.T) {
	m := NewMachine()
	steps := []State{StateIdle, StateSubmitting, StateSucceeded, StateIdle}
	for _, next := range steps {
		if err := m.To(next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if m.State() != StateIdle {
		t.Fatalf("final state = %s, want idle", m.State())
	}
}

func TestMachine_FailurePathReturnsToIdle(t *testing.T) {
	m := NewMachine()
	for _, next := range []State{StateIdle, StateSubmitting, StateFailed, StateIdle} {
		if err := m.To(next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
}

func TestMachine_RejectsInvalidTransitions(t *testing.T) {
	m := NewMachine()
	if err := m.To(StateIdle); err != nil {
		t.Fatal(err)
	}
	if err := m.To(StateSubmitting); err != nil {
		t.Fatal(err)
	}

	// One request in flight at a time: submitting cannot re-enter itself.
	if err := m.To(StateSubmitting); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if m.State() != StateSubmitting {
		t.Fatalf("rejected transition must not change state, got %s", m.State())
	}
}

func TestMachine_RedirectedIsTerminal(t *testing.T) {
	m := NewMachine()
	if err := m.To(StateRedirected); err != nil {
		t.Fatal(err)
	}
	for _, next := range []State{StateIdle, StateSubmitting, StateGuarded} {
		if err := m.To(next); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("redirected page must stay dead, transition to %s gave %v", next, err)
		}
	}
}
