package activity

import (
	"testing"

	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/lifecycle"
	"github.com/go-drift/droid/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen struct {
	Base
	calls []string
	title *view.TextView
}

func (s *screen) OnStart() {
	s.calls = append(s.calls, "start:"+s.State().String())
	s.title = view.NewTextView("title", s.Extra("title", extras.String("untitled")).Interface().(string))
	s.AddView("title", s.title)
}

func (s *screen) OnResume() { s.calls = append(s.calls, "resume") }

func attached(t *testing.T, x *extras.Extras) *screen {
	t.Helper()
	s := &screen{}
	require.NoError(t, Attach(s, "main", x, nil))
	return s
}

func TestUnattachedActivity(t *testing.T) {
	s := &screen{}
	assert.ErrorIs(t, s.Start(), ErrNotAttached)
	assert.Equal(t, lifecycle.Created, s.State())
	_, err := s.AddLifecycleListener(func(_, _ lifecycle.State) {})
	assert.ErrorIs(t, err, ErrNotAttached)
}

func TestAttachTwiceFails(t *testing.T) {
	s := attached(t, nil)
	assert.ErrorIs(t, Attach(s, "again", nil, nil), ErrAlreadyAttached)
	assert.Equal(t, "main", s.Name())
	assert.NotEmpty(t, s.InstanceID())
}

func TestOverriddenHooksRun(t *testing.T) {
	x := extras.New()
	x.PutString("title", "Hello")
	s := attached(t, x)

	require.NoError(t, s.Start())
	require.NoError(t, s.Resume())

	assert.Equal(t, []string{"start:started", "resume"}, s.calls)
	assert.Equal(t, "Hello", s.title.Text())
	assert.Same(t, s.title, s.View("title"))
}

func TestResumeBeforeStartFailsForAnyActivity(t *testing.T) {
	for _, a := range []Activity{attached(t, nil), NewBasic("basic", nil, nil)} {
		err := a.Resume()
		assert.True(t, errors.Is(err, errors.KindInvalidStateTransition))
		assert.Equal(t, lifecycle.Created, a.State())
	}
}

func TestDestroyTwice(t *testing.T) {
	a := NewBasic("b", nil, nil)
	require.NoError(t, a.Start())
	require.NoError(t, a.Stop())
	require.NoError(t, a.Destroy())
	assert.True(t, errors.Is(a.Destroy(), errors.KindInvalidStateTransition))
}

func TestExtrasAreCapturedCopies(t *testing.T) {
	x := extras.New()
	x.PutInt("n", 1)
	a := NewBasic("b", x, nil)

	x.PutInt("n", 2)
	assert.Equal(t, int64(1), a.Extras().Int("n", 0))

	got := a.Extras()
	got.PutInt("n", 3)
	assert.Equal(t, int64(1), a.Extra("n", extras.Null()).Interface())
	assert.True(t, a.HasExtra("n"))
	assert.False(t, a.HasExtra("m"))
}

func TestAddViewOverwrites(t *testing.T) {
	a := NewBasic("b", nil, nil)
	v := view.NewTextView("x", "v")
	w := view.NewTextView("x", "w")
	other := view.NewTextView("y", "y")

	a.AddView("x", v)
	a.AddView("y", other)
	a.AddView("x", w)

	assert.Same(t, w, a.View("x"))
	assert.Equal(t, []string{"x", "y"}, a.ViewIDs())
	assert.Len(t, a.Views(), 2)
}

func TestRemoveViewBinding(t *testing.T) {
	a := NewBasic("b", nil, nil)
	a.AddView("x", view.NewTextView("x", ""))

	assert.False(t, a.RemoveView("missing"))
	assert.True(t, a.RemoveView("x"))
	assert.Nil(t, a.View("x"))
	assert.Empty(t, a.ViewIDs())
}

func TestFindViewByIDAcrossTrees(t *testing.T) {
	a := NewBasic("b", nil, nil)
	header := view.NewLinearLayout("header", view.Horizontal)
	body := view.NewLinearLayout("body", view.Vertical)
	target := view.NewEditText("name", "Name")
	body.AddView(target)
	a.AddView("header", header)
	a.AddView("body", body)

	assert.Same(t, target, a.FindViewByID("name"))
	assert.Nil(t, a.FindViewByID("ghost"))

	nodes := a.Snapshot()
	require.Len(t, nodes, 2)
	assert.Equal(t, "body", nodes[1].ID)
}

func TestLifecycleListener(t *testing.T) {
	a := NewBasic("b", nil, nil)
	var seen []lifecycle.State
	remove, err := AddListener(a, func(_, to lifecycle.State) { seen = append(seen, to) })
	require.NoError(t, err)

	require.NoError(t, a.Start())
	remove()
	require.NoError(t, a.Resume())
	assert.Equal(t, []lifecycle.State{lifecycle.Started}, seen)
	assert.Same(t, &a.Base, BaseOf(a))
}
