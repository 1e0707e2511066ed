// Package activity provides the screen type managed by an App.
//
// User screens embed [Base] and override whichever lifecycle hooks they need,
// the same way a stateful widget embeds its base state:
//
//	type mainActivity struct {
//	    activity.Base
//	    counter *view.TextView
//	}
//
//	func (a *mainActivity) OnStart() {
//	    a.counter = view.NewTextView("counter", "0")
//	    a.AddView("counter", a.counter)
//	}
//
// An activity must be attached before its lifecycle methods are used. The
// App does this when it starts an activity; standalone code calls [Attach].
package activity

import (
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/lifecycle"
	"github.com/go-drift/droid/pkg/view"
)

var (
	// ErrNotAttached is returned by lifecycle methods of an activity that was
	// never passed to Attach.
	ErrNotAttached = stderrors.New("activity: not attached")
	// ErrAlreadyAttached is returned by Attach for an activity that is
	// already bound.
	ErrAlreadyAttached = stderrors.New("activity: already attached")
)

// Activity is a screen with a validated lifecycle and a view registry.
// Implementations embed Base.
type Activity interface {
	lifecycle.Hooks

	Name() string
	State() lifecycle.State
	Start() error
	Resume() error
	Pause() error
	Stop() error
	Destroy() error

	activityBase() *Base
}

// Base implements the bookkeeping shared by every activity. Its hooks are
// no-ops.
type Base struct {
	lifecycle.NopHooks

	name    string
	id      string
	machine *lifecycle.Machine
	extras  *extras.Extras
	logger  *zap.Logger

	views map[string]view.View
	order []string
}

func (b *Base) activityBase() *Base { return b }

// Attach binds a to a fresh lifecycle machine whose hooks are a's own
// methods, and captures a copy of x as its extras. A nil logger discards
// output.
func Attach(a Activity, name string, x *extras.Extras, logger *zap.Logger) error {
	b := a.activityBase()
	if b.machine != nil {
		return ErrAlreadyAttached
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	b.name = name
	b.id = uuid.NewString()
	b.extras = x.Clone()
	b.machine = lifecycle.NewMachine(a)
	b.logger = logger.Named("activity").With(
		zap.String("activity", name),
		zap.String("instance", b.id),
	)
	return nil
}

// Name returns the name the activity was attached under.
func (b *Base) Name() string { return b.name }

// InstanceID returns a unique id assigned at attach time.
func (b *Base) InstanceID() string { return b.id }

// Logger returns the activity's logger.
func (b *Base) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

// State returns the lifecycle state; an unattached activity is Created.
func (b *Base) State() lifecycle.State {
	if b.machine == nil {
		return lifecycle.Created
	}
	return b.machine.State()
}

// Start transitions to Started and calls OnStart.
func (b *Base) Start() error { return b.apply(lifecycle.Start) }

// Resume transitions to Resumed and calls OnResume.
func (b *Base) Resume() error { return b.apply(lifecycle.Resume) }

// Pause transitions to Paused and calls OnPause.
func (b *Base) Pause() error { return b.apply(lifecycle.Pause) }

// Stop transitions to Stopped and calls OnStop.
func (b *Base) Stop() error { return b.apply(lifecycle.Stop) }

// Destroy transitions to Destroyed and calls OnDestroy.
func (b *Base) Destroy() error { return b.apply(lifecycle.Destroy) }

func (b *Base) apply(t lifecycle.Transition) error {
	if b.machine == nil {
		return ErrNotAttached
	}
	if err := b.machine.Apply(t); err != nil {
		b.logger.Debug("transition rejected", zap.Stringer("transition", t), zap.Error(err))
		return err
	}
	b.logger.Info("activity "+b.machine.State().String(), zap.Stringer("transition", t))
	return nil
}

// AddLifecycleListener observes every transition of this activity.
func (b *Base) AddLifecycleListener(fn lifecycle.Listener) (remove func(), err error) {
	if b.machine == nil {
		return nil, ErrNotAttached
	}
	return b.machine.AddListener(fn), nil
}

// Extras returns a copy of the extras captured at attach time.
func (b *Base) Extras() *extras.Extras { return b.extras.Clone() }

// Extra returns the extra under key, or def if absent.
func (b *Base) Extra(key string, def extras.Value) extras.Value {
	return b.extras.Get(key, def)
}

// HasExtra reports whether key was supplied.
func (b *Base) HasExtra(key string) bool { return b.extras.Has(key) }

// AddListener is a convenience for attaching a lifecycle listener to any
// Activity value.
func AddListener(a Activity, fn lifecycle.Listener) (remove func(), err error) {
	return a.activityBase().AddLifecycleListener(fn)
}

// BaseOf returns the embedded Base of a.
func BaseOf(a Activity) *Base { return a.activityBase() }
