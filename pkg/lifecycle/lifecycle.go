// Package lifecycle implements the activity lifecycle state machine.
//
// The legal transitions are:
//
//	Created   -> Started
//	Started   -> Resumed | Stopped
//	Resumed   -> Paused
//	Paused    -> Resumed | Stopped
//	Stopped   -> Started | Destroyed
//	Destroyed -> (terminal)
//
// Every transition is validated before any side effect. On success the
// machine updates its state, notifies listeners, then calls the matching
// hook exactly once, so hooks always observe the new state.
package lifecycle

import (
	"github.com/go-drift/droid/pkg/errors"
)

// State is an activity lifecycle state.
type State string

const (
	Created   State = "created"
	Started   State = "started"
	Resumed   State = "resumed"
	Paused    State = "paused"
	Stopped   State = "stopped"
	Destroyed State = "destroyed"
)

func (s State) String() string { return string(s) }

// IsTerminal reports whether no transition leaves s.
func (s State) IsTerminal() bool { return s == Destroyed }

// Transition names a lifecycle method.
type Transition string

const (
	Start   Transition = "start"
	Resume  Transition = "resume"
	Pause   Transition = "pause"
	Stop    Transition = "stop"
	Destroy Transition = "destroy"
)

func (t Transition) String() string { return string(t) }

type rule struct {
	target State
	from   []State
}

var rules = map[Transition]rule{
	Start:   {target: Started, from: []State{Created, Stopped}},
	Resume:  {target: Resumed, from: []State{Started, Paused}},
	Pause:   {target: Paused, from: []State{Resumed}},
	Stop:    {target: Stopped, from: []State{Started, Paused}},
	Destroy: {target: Destroyed, from: []State{Stopped}},
}

// Target returns the state t leads to, or "" for an unknown transition.
func (t Transition) Target() State {
	return rules[t].target
}

// Allowed reports whether t may be taken from state from.
func Allowed(from State, t Transition) bool {
	r, ok := rules[t]
	if !ok {
		return false
	}
	for _, s := range r.from {
		if s == from {
			return true
		}
	}
	return false
}

// Hooks receives lifecycle callbacks. Each is called after the state has
// changed.
type Hooks interface {
	OnStart()
	OnResume()
	OnPause()
	OnStop()
	OnDestroy()
}

// NopHooks implements Hooks with empty methods. Embed it to override only
// the hooks you need.
type NopHooks struct{}

func (NopHooks) OnStart()   {}
func (NopHooks) OnResume()  {}
func (NopHooks) OnPause()   {}
func (NopHooks) OnStop()    {}
func (NopHooks) OnDestroy() {}

// Listener is called on every successful transition, before the hook runs.
type Listener func(from, to State)

type listenerEntry struct {
	id int
	fn Listener
}

// Machine tracks one activity's state. It is not safe for concurrent use.
type Machine struct {
	state     State
	hooks     Hooks
	listeners []listenerEntry
	nextID    int
	running   Transition
}

// NewMachine returns a machine in the Created state that calls hooks.
// A nil hooks is replaced by NopHooks.
func NewMachine(hooks Hooks) *Machine {
	if hooks == nil {
		hooks = NopHooks{}
	}
	return &Machine{state: Created, hooks: hooks}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// CanTransition reports whether t would currently succeed.
func (m *Machine) CanTransition(t Transition) bool {
	return m.running == "" && Allowed(m.state, t)
}

// AddListener registers fn for every subsequent transition and returns a
// function that removes it.
func (m *Machine) AddListener(fn Listener) func() {
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Start moves Created or Stopped to Started and calls OnStart.
func (m *Machine) Start() error { return m.Apply(Start) }

// Resume moves Started or Paused to Resumed and calls OnResume.
func (m *Machine) Resume() error { return m.Apply(Resume) }

// Pause moves Resumed to Paused and calls OnPause.
func (m *Machine) Pause() error { return m.Apply(Pause) }

// Stop moves Started or Paused to Stopped and calls OnStop.
func (m *Machine) Stop() error { return m.Apply(Stop) }

// Destroy moves Stopped to Destroyed and calls OnDestroy.
func (m *Machine) Destroy() error { return m.Apply(Destroy) }

// Apply performs t. It fails with *errors.TransitionError when t is not legal
// from the current state, and with *errors.ReentrantError when called from a
// hook or listener of this machine. Either way the state is unchanged.
func (m *Machine) Apply(t Transition) error {
	if m.running != "" {
		return &errors.ReentrantError{
			Op:      "lifecycle." + t.String(),
			Running: "lifecycle." + m.running.String(),
		}
	}
	if !Allowed(m.state, t) {
		return &errors.TransitionError{From: m.state.String(), Transition: t.String()}
	}

	from := m.state
	m.state = rules[t].target

	m.running = t
	defer func() { m.running = "" }()

	listeners := make([]listenerEntry, len(m.listeners))
	copy(listeners, m.listeners)
	for _, l := range listeners {
		l.fn(from, m.state)
	}
	m.invoke(t)
	return nil
}

func (m *Machine) invoke(t Transition) {
	switch t {
	case Start:
		m.hooks.OnStart()
	case Resume:
		m.hooks.OnResume()
	case Pause:
		m.hooks.OnPause()
	case Stop:
		m.hooks.OnStop()
	case Destroy:
		m.hooks.OnDestroy()
	}
}
