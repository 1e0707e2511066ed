// Package app owns the activity registry and the active-screen hand-off.
//
// An App maps screen names to constructors and holds at most one active
// activity. Starting a screen fully tears down the current one (pause if
// resumed, stop, destroy) before the next one is constructed, so at most one
// activity is ever Resumed:
//
//	a := app.New("Counter", "com.example.counter")
//	a.RegisterActivity("main", newMainActivity)
//	a.RegisterActivity("settings", newSettingsActivity)
//	if err := a.StartActivity("main", nil); err != nil {
//	    return err
//	}
//	return a.Run(console.Backend{Out: os.Stdout})
//
// Apps are independent values; nothing is registered process-wide.
package app

import (
	"sort"

	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/lifecycle"
	"github.com/go-drift/droid/pkg/logging"
)

// Constructor builds a fresh, unattached activity instance.
type Constructor func() activity.Activity

// TransitionListener observes every lifecycle transition of every activity
// started by an App.
type TransitionListener func(name string, from, to lifecycle.State)

// Backend renders the active activity and forwards user input until the
// user quits.
type Backend interface {
	Run(a *App) error
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(a *App) error

// Run calls f(a).
func (f BackendFunc) Run(a *App) error { return f(a) }

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used by the App and the activities it starts.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logging.OrNop(logger)
	}
}

type transitionEntry struct {
	id int
	fn TransitionListener
}

// App is a host for named activities.
type App struct {
	name      string
	packageID string
	logger    *zap.Logger

	registry   map[string]Constructor
	active     activity.Activity
	activeName string
	switching  bool

	listeners      []transitionEntry
	nextListenerID int
}

// New creates an App with an empty registry.
func New(name, packageID string, opts ...Option) *App {
	a := &App{
		name:      name,
		packageID: packageID,
		logger:    zap.NewNop(),
		registry:  make(map[string]Constructor),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.Named("app").With(zap.String("app", name))
	return a
}

// Name returns the human-readable application name.
func (a *App) Name() string { return a.name }

// PackageID returns the reverse-DNS package identifier.
func (a *App) PackageID() string { return a.packageID }

// Logger returns the App's logger.
func (a *App) Logger() *zap.Logger { return a.logger }

// RegisterActivity binds name to ctor. A duplicate name replaces the
// earlier binding.
func (a *App) RegisterActivity(name string, ctor Constructor) {
	if _, exists := a.registry[name]; exists {
		a.logger.Warn("replacing registered activity", zap.String("activity", name))
	}
	a.registry[name] = ctor
	a.logger.Info("registered activity", zap.String("activity", name))
}

// IsRegistered reports whether name has a constructor.
func (a *App) IsRegistered(name string) bool {
	_, ok := a.registry[name]
	return ok
}

// Activities returns the registered names in sorted order.
func (a *App) Activities() []string {
	names := make([]string, 0, len(a.registry))
	for name := range a.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Active returns the current activity, or nil.
func (a *App) Active() activity.Activity { return a.active }

// ActiveName returns the registry name of the current activity, or "".
func (a *App) ActiveName() string { return a.activeName }

// AddTransitionListener registers fn for every subsequent transition of any
// activity started by a. It returns a function that removes fn.
func (a *App) AddTransitionListener(fn TransitionListener) func() {
	a.nextListenerID++
	id := a.nextListenerID
	a.listeners = append(a.listeners, transitionEntry{id: id, fn: fn})
	return func() {
		for i, l := range a.listeners {
			if l.id == id {
				a.listeners = append(a.listeners[:i], a.listeners[i+1:]...)
				return
			}
		}
	}
}

// StartActivity makes name the active screen.
//
// It fails with *errors.ActivityNotFoundError when name is unregistered, and
// with *errors.ReentrantError when called while another StartActivity or
// Finish is still in progress (for example from a lifecycle hook). If the
// current activity cannot be torn down, the error is returned and it stays
// active. x is copied into the new activity; nil means no extras.
func (a *App) StartActivity(name string, x *extras.Extras) error {
	const op = "app.StartActivity"
	if a.switching {
		return &errors.ReentrantError{Op: op, Running: "activity hand-off"}
	}
	ctor, ok := a.registry[name]
	if !ok {
		return &errors.ActivityNotFoundError{Name: name, Registered: a.Activities()}
	}

	a.switching = true
	defer func() { a.switching = false }()

	if err := a.teardownActive(); err != nil {
		return err
	}

	next := ctor()
	if err := activity.Attach(next, name, x, a.logger); err != nil {
		return errors.Wrap(op, errors.KindUnknown, err)
	}
	a.observe(name, next)

	if err := next.Start(); err != nil {
		a.abandon(next)
		return err
	}
	if err := next.Resume(); err != nil {
		a.abandon(next)
		return err
	}

	a.active = next
	a.activeName = name
	a.logger.Info("started activity", zap.String("activity", name))
	return nil
}

// Finish tears down the active activity, leaving none active.
func (a *App) Finish() error {
	if a.switching {
		return &errors.ReentrantError{Op: "app.Finish", Running: "activity hand-off"}
	}
	a.switching = true
	defer func() { a.switching = false }()
	return a.teardownActive()
}

// Run hands control to b. With no active activity there is nothing to show,
// so Run fails unless b tolerates that itself.
func (a *App) Run(b Backend) error {
	a.logger.Info("running application", zap.String("active", a.activeName))
	return b.Run(a)
}

// teardownActive drives the active activity to Destroyed. An activity that
// is already Destroyed is simply released. On failure the activity stays in
// the active slot in whatever state it reached.
func (a *App) teardownActive() error {
	cur := a.active
	if cur == nil {
		return nil
	}
	if cur.State() == lifecycle.Destroyed {
		// Torn down outside the App; only the slot is left to clear.
		a.logger.Info("cleared destroyed activity", zap.String("activity", a.activeName))
		a.active = nil
		a.activeName = ""
		return nil
	}
	if cur.State() == lifecycle.Resumed {
		if err := cur.Pause(); err != nil {
			return err
		}
	}
	if cur.State() != lifecycle.Stopped {
		if err := cur.Stop(); err != nil {
			return err
		}
	}
	if err := cur.Destroy(); err != nil {
		return err
	}
	a.logger.Info("finished activity", zap.String("activity", a.activeName))
	a.active = nil
	a.activeName = ""
	return nil
}

// abandon destroys an activity whose startup failed. Errors are ignored;
// the instance is discarded either way.
func (a *App) abandon(act activity.Activity) {
	if act.State() == lifecycle.Resumed {
		_ = act.Pause()
	}
	if act.State() == lifecycle.Started || act.State() == lifecycle.Paused {
		_ = act.Stop()
	}
	if act.State() == lifecycle.Stopped {
		_ = act.Destroy()
	}
	a.logger.Warn("abandoned activity after failed start", zap.String("activity", act.Name()))
}

func (a *App) observe(name string, act activity.Activity) {
	// Attach has just succeeded, so the listener cannot fail to register.
	_, _ = activity.AddListener(act, func(from, to lifecycle.State) {
		for _, l := range append([]transitionEntry(nil), a.listeners...) {
			a.notify(l.fn, name, from, to)
		}
	})
}

// notify runs one listener. A panicking listener is reported and does not
// interrupt the transition or the remaining listeners.
func (a *App) notify(fn TransitionListener, name string, from, to lifecycle.State) {
	defer errors.Recover("app.transitionListener")
	fn(name, from, to)
}
