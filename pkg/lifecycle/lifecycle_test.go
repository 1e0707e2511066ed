package lifecycle

import (
	"testing"

	"github.com/go-drift/droid/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHooks struct {
	m     *Machine
	calls []string
	seen  []State
}

func (h *recordingHooks) record(name string) {
	h.calls = append(h.calls, name)
	if h.m != nil {
		h.seen = append(h.seen, h.m.State())
	}
}

func (h *recordingHooks) OnStart()   { h.record("start") }
func (h *recordingHooks) OnResume()  { h.record("resume") }
func (h *recordingHooks) OnPause()   { h.record("pause") }
func (h *recordingHooks) OnStop()    { h.record("stop") }
func (h *recordingHooks) OnDestroy() { h.record("destroy") }

func newRecorded() (*Machine, *recordingHooks) {
	h := &recordingHooks{}
	m := NewMachine(h)
	h.m = m
	return m, h
}

func TestResumeBeforeStartFails(t *testing.T) {
	m, h := newRecorded()

	err := m.Resume()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindInvalidStateTransition))

	var te *errors.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "created", te.From)
	assert.Equal(t, "resume", te.Transition)
	assert.Equal(t, Created, m.State())
	assert.Empty(t, h.calls)
}

func TestPauseResumeCycle(t *testing.T) {
	m, h := newRecorded()

	require.NoError(t, m.Start())
	require.NoError(t, m.Resume())
	require.NoError(t, m.Pause())
	require.NoError(t, m.Resume())

	assert.Equal(t, Resumed, m.State())
	assert.Equal(t, []string{"start", "resume", "pause", "resume"}, h.calls)
}

func TestHooksObserveNewState(t *testing.T) {
	m, h := newRecorded()
	require.NoError(t, m.Start())
	require.NoError(t, m.Resume())
	assert.Equal(t, []State{Started, Resumed}, h.seen)
}

func TestDestroyIsTerminal(t *testing.T) {
	m, h := newRecorded()
	require.NoError(t, m.Start())
	require.NoError(t, m.Stop())
	require.NoError(t, m.Destroy())

	err := m.Destroy()
	assert.True(t, errors.Is(err, errors.KindInvalidStateTransition))
	assert.Equal(t, Destroyed, m.State())
	assert.True(t, m.State().IsTerminal())
	assert.Equal(t, []string{"start", "stop", "destroy"}, h.calls)

	for _, tr := range []Transition{Start, Resume, Pause, Stop, Destroy} {
		assert.False(t, m.CanTransition(tr), tr.String())
	}
}

func TestTransitionTable(t *testing.T) {
	states := []State{Created, Started, Resumed, Paused, Stopped, Destroyed}
	transitions := []Transition{Start, Resume, Pause, Stop, Destroy}
	legal := map[State][]Transition{
		Created:   {Start},
		Started:   {Resume, Stop},
		Resumed:   {Pause},
		Paused:    {Resume, Stop},
		Stopped:   {Start, Destroy},
		Destroyed: nil,
	}

	for _, s := range states {
		for _, tr := range transitions {
			want := false
			for _, l := range legal[s] {
				if l == tr {
					want = true
				}
			}
			assert.Equal(t, want, Allowed(s, tr), "%s from %s", tr, s)
		}
	}
	assert.False(t, Allowed(Created, Transition("fly")))
	assert.Equal(t, Paused, Pause.Target())
}

func TestRestartAfterStop(t *testing.T) {
	m, _ := newRecorded()
	require.NoError(t, m.Start())
	require.NoError(t, m.Stop())
	require.NoError(t, m.Start())
	assert.Equal(t, Started, m.State())
}

func TestListeners(t *testing.T) {
	m := NewMachine(nil)
	var got [][2]State
	remove := m.AddListener(func(from, to State) {
		got = append(got, [2]State{from, to})
	})

	require.NoError(t, m.Start())
	remove()
	require.NoError(t, m.Resume())

	assert.Equal(t, [][2]State{{Created, Started}}, got)
}

type reentrantHooks struct {
	NopHooks
	m   *Machine
	err error
}

func (h *reentrantHooks) OnStart() { h.err = h.m.Resume() }

func TestReentrantTransitionRejected(t *testing.T) {
	h := &reentrantHooks{}
	m := NewMachine(h)
	h.m = m

	require.NoError(t, m.Start())
	require.Error(t, h.err)
	assert.True(t, errors.Is(h.err, errors.KindReentrant))
	assert.Equal(t, Started, m.State())

	require.NoError(t, m.Resume(), "guard must be released after the hook returns")
}

func TestGuardReleasedAfterPanic(t *testing.T) {
	m := NewMachine(panicHooks{})
	assert.Panics(t, func() { _ = m.Start() })
	assert.Equal(t, Started, m.State())
	assert.NoError(t, m.Stop())
}

type panicHooks struct{ NopHooks }

func (panicHooks) OnStart() { panic("boom") }
