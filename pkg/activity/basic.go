package activity

import (
	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/extras"
)

// Basic is an activity with no hooks of its own.
type Basic struct {
	Base
}

// NewBasic returns an attached Basic activity.
func NewBasic(name string, x *extras.Extras, logger *zap.Logger) *Basic {
	a := &Basic{}
	// A fresh value is never already attached.
	_ = Attach(a, name, x, logger)
	return a
}
