package app

import (
	"github.com/bytedance/sonic"

	"github.com/go-drift/droid/pkg/extras"
)

// Intent describes a request to open a screen: an action, an optional
// target activity name, and a payload of extras.
type Intent struct {
	Action string
	Target string
	extras *extras.Extras
}

// NewIntent returns an Intent with no extras.
func NewIntent(action, target string) *Intent {
	return &Intent{Action: action, Target: target, extras: extras.New()}
}

// PutExtra stores v under key, replacing any previous value.
func (i *Intent) PutExtra(key string, v extras.Value) *Intent {
	if i.extras == nil {
		i.extras = extras.New()
	}
	i.extras.Put(key, v)
	return i
}

// GetExtra returns the value stored under key, or def.
func (i *Intent) GetExtra(key string, def extras.Value) extras.Value {
	return i.extras.Get(key, def)
}

// HasExtra reports whether key is present.
func (i *Intent) HasExtra(key string) bool {
	return i.extras.Has(key)
}

// Extras returns a copy of the payload.
func (i *Intent) Extras() *extras.Extras {
	return i.extras.Clone()
}

// StartIntent starts the intent's target with its extras. An empty target
// falls back to the action as the activity name.
func (a *App) StartIntent(i *Intent) error {
	name := i.Target
	if name == "" {
		name = i.Action
	}
	return a.StartActivity(name, i.extras)
}

type intentJSON struct {
	Action string         `json:"action"`
	Target string         `json:"target,omitempty"`
	Extras *extras.Extras `json:"extras"`
}

// MarshalJSON encodes the intent with tagged extras.
func (i *Intent) MarshalJSON() ([]byte, error) {
	x := i.extras
	if x == nil {
		x = extras.New()
	}
	return sonic.Marshal(intentJSON{Action: i.Action, Target: i.Target, Extras: x})
}

// UnmarshalJSON decodes an intent produced by MarshalJSON.
func (i *Intent) UnmarshalJSON(data []byte) error {
	var raw intentJSON
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Action = raw.Action
	i.Target = raw.Target
	i.extras = raw.Extras
	if i.extras == nil {
		i.extras = extras.New()
	}
	return nil
}
