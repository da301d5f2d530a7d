package session

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Lifecycle states.
const (
	StateIdle       = "idle"
	StateReferenced = "referenced"
	StateTracking   = "tracking"
	StatePerfect    = "perfect"
)

// Lifecycle events.
const (
	eventSetReference   = "set_reference"
	eventClearReference = "clear_reference"
	eventSubjectTracked = "subject_tracked"
	eventSubjectLost    = "subject_lost"
	eventPerfect        = "perfect"
	eventImperfect      = "imperfect"
)

type lifecycleContext struct{}

// Lifecycle tracks the coarse session state for status reporting. Events that
// are invalid for the current state are ignored, so the engine can signal
// unconditionally every tick.
type Lifecycle struct {
	interpreter *statekit.Interpreter[lifecycleContext]
}

func NewLifecycle() (*Lifecycle, error) {
	builder := statekit.NewMachine[lifecycleContext]("guidance-session").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(lifecycleContext{})

	builder.State(StateIdle).
		On(eventSetReference).Target(StateReferenced).
		Done()

	builder.State(StateReferenced).
		On(eventSubjectTracked).Target(StateTracking).
		On(eventSetReference).Target(StateReferenced).
		On(eventClearReference).Target(StateIdle).
		Done()

	builder.State(StateTracking).
		On(eventPerfect).Target(StatePerfect).
		On(eventSubjectLost).Target(StateReferenced).
		On(eventSetReference).Target(StateReferenced).
		On(eventClearReference).Target(StateIdle).
		Done()

	builder.State(StatePerfect).
		On(eventImperfect).Target(StateTracking).
		On(eventSubjectLost).Target(StateReferenced).
		On(eventSetReference).Target(StateReferenced).
		On(eventClearReference).Target(StateIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build session state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()
	return &Lifecycle{interpreter: interpreter}, nil
}

// Signal sends an event; invalid events for the current state leave it
// unchanged.
func (l *Lifecycle) Signal(event string) {
	l.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
}

// Current returns the state name.
func (l *Lifecycle) Current() string {
	return string(l.interpreter.State().Value)
}
