package service

import (
	"errors"
	"sync"
)

// FlowState tracks one confirm-then-mutate workflow. Every mutating agenda
// operation runs through the same machine:
//
//	Idle -> Confirming -> Submitting -> Done | Failed
//
// A negative confirmation returns to Idle without any network call, and a
// flow that is Confirming or Submitting refuses to start again, which is what
// keeps a double-clicked button from submitting twice.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowConfirming
	FlowSubmitting
	FlowDone
	FlowFailed
)

var (
	// ErrCancelled reports that the user declined the confirmation step.
	ErrCancelled = errors.New("operación cancelada")
	// ErrFlowBusy reports that the same operation is already in progress.
	ErrFlowBusy = errors.New("operation already in progress")
)

// Confirmer answers the confirmation prompt shown before a mutation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

type Flow struct {
	mu    sync.Mutex
	state FlowState
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) set(s FlowState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Run drives one pass through the machine. submit is only invoked after an
// affirmative confirmation, and never while a previous pass is still going.
func (f *Flow) Run(confirmer Confirmer, prompt string, submit func() error) error {
	f.mu.Lock()
	if f.state == FlowConfirming || f.state == FlowSubmitting {
		f.mu.Unlock()
		return ErrFlowBusy
	}
	f.state = FlowConfirming
	f.mu.Unlock()

	if confirmer == nil || !confirmer.Confirm(prompt) {
		f.set(FlowIdle)
		return ErrCancelled
	}

	f.set(FlowSubmitting)
	if err := submit(); err != nil {
		f.set(FlowFailed)
		return err
	}
	f.set(FlowDone)
	return nil
}
