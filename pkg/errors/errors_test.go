package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidStateTransition, "invalid_state_transition"},
		{KindActivityNotFound, "activity_not_found"},
		{KindInvalidColorFormat, "invalid_color_format"},
		{KindReentrant, "reentrant"},
		{KindConfig, "config"},
		{KindStorage, "storage"},
		{KindNetwork, "network"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestActivityNotFoundErrorListsNames(t *testing.T) {
	err := &ActivityNotFoundError{Name: "missing", Registered: []string{"main", "settings"}}
	assert.Contains(t, err.Error(), "main")
	assert.Contains(t, err.Error(), "settings")
	assert.Contains(t, err.Error(), `"missing"`)

	empty := &ActivityNotFoundError{Name: "x"}
	assert.Contains(t, empty.Error(), "no activities registered")
}

func TestTransitionErrorString(t *testing.T) {
	err := &TransitionError{From: "created", Transition: "resume"}
	assert.Equal(t, "invalid state transition: cannot resume from created", err.Error())
}

func TestKindOfUnwrapsChains(t *testing.T) {
	base := &ColorFormatError{Value: "red"}
	wrapped := fmt.Errorf("set background: %w", base)

	assert.Equal(t, KindInvalidColorFormat, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindInvalidColorFormat))
	assert.False(t, Is(nil, KindInvalidColorFormat))
	assert.Equal(t, KindUnknown, KindOf(stderrors.New("plain")))

	de := Wrap("storage.WriteFile", KindStorage, stderrors.New("disk full"))
	assert.Equal(t, KindStorage, KindOf(de))
	assert.Nil(t, Wrap("noop", KindStorage, nil))
}

func TestDroidErrorString(t *testing.T) {
	err := &DroidError{Op: "config.Load", Kind: KindConfig, Err: stderrors.New("boom")}
	assert.Equal(t, "config.Load [config]: boom", err.Error())
	assert.Equal(t, "boom", stderrors.Unwrap(err).Error())
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "terminal.click"
	assert.Equal(t, "panic in terminal.click: test panic", err.Error())
}

func TestReport(t *testing.T) {
	var captured *DroidError
	SetHandler(&testHandler{onError: func(err *DroidError) { captured = err }})
	defer SetHandler(nil)

	Report(&DroidError{Op: "test.op", Kind: KindRender, Err: stderrors.New("x")})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero())
	assert.Contains(t, captured.StackTrace, "TestReport")

	preset := &DroidError{Op: "test.op", Kind: KindRender, StackTrace: "given"}
	Report(preset)
	assert.Equal(t, "given", captured.StackTrace)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	assert.Equal(t, 42, got)
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	_, ok := Handler().(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should restore LogHandler, got %T", Handler())
}

func TestLogHandlerWritesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewLogHandler(zap.New(core))
	h.Verbose = true

	h.HandleError(&DroidError{Op: "render", Kind: KindRender, Err: stderrors.New("bad"), StackTrace: "stack"})
	h.HandlePanic(&PanicError{Op: "click", Value: "boom"})
	h.HandleError(nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "droid error", entries[0].Message)
	assert.Equal(t, "render", entries[0].ContextMap()["op"])
	assert.Equal(t, "stack", entries[0].ContextMap()["stack"])
	assert.Equal(t, "droid panic", entries[1].Message)
}

type testHandler struct {
	onError func(*DroidError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DroidError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
