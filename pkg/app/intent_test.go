package app

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/extras"
)

func TestIntentExtras(t *testing.T) {
	in := NewIntent("open", "settings").
		PutExtra("theme", extras.String("dark")).
		PutExtra("volume", extras.Int(7))

	assert.True(t, in.HasExtra("theme"))
	assert.False(t, in.HasExtra("missing"))
	assert.Equal(t, "dark", in.GetExtra("theme", extras.Null()).Interface())
	assert.True(t, in.GetExtra("missing", extras.Null()).IsNull())

	copied := in.Extras()
	copied.PutString("theme", "light")
	assert.Equal(t, "dark", in.Extras().String("theme", ""))
}

func TestIntentJSON(t *testing.T) {
	in := NewIntent("open", "settings").
		PutExtra("ratio", extras.Float(2)).
		PutExtra("count", extras.Int(2))

	data, err := sonic.Marshal(in)
	require.NoError(t, err)

	var out Intent
	require.NoError(t, out.UnmarshalJSON(data))
	assert.Equal(t, "open", out.Action)
	assert.Equal(t, "settings", out.Target)
	assert.Equal(t, extras.KindFloat, out.GetExtra("ratio", extras.Null()).Kind())
	assert.Equal(t, extras.KindInt, out.GetExtra("count", extras.Null()).Kind())
}

func TestStartIntent(t *testing.T) {
	a := New("Test", "com.example.test")
	a.RegisterActivity("settings", func() activity.Activity { return &activity.Basic{} })

	require.NoError(t, a.StartIntent(NewIntent("view", "settings").PutExtra("tab", extras.String("audio"))))
	assert.Equal(t, "settings", a.ActiveName())
	assert.Equal(t, "audio", activity.BaseOf(a.Active()).Extras().String("tab", ""))

	require.NoError(t, a.StartIntent(NewIntent("settings", "")))
	assert.Equal(t, "settings", a.ActiveName())
}
