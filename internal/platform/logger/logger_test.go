package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONLogger_FieldsAndApp(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "rxreader", Out: &buf})

	l.With(map[string]any{"request_id": "abc"}).Info("parsed", map[string]any{
		"medications": 2,
		"  ":          "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "parsed", entry["message"])
	assert.Equal(t, "rxreader", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.EqualValues(t, 2, entry["medications"])
	assert.NotContains(t, entry, "  ")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Out: &buf})

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	l.Warn("shown", nil)
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatText, Out: &buf})

	l.Debug("hello", map[string]any{"k": "v"})
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "k=v")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing", map[string]any{"a": 1})
	assert.Same(t, l, l.With(nil))
}
