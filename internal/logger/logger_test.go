package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWithAndLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	l := (&Logger{SugaredLogger: zap.New(core).Sugar()}).With("problem", "USCents239")

	l.Debug("solving", "target", 239)
	l.Info("solved", "count", 14)
	l.Warn("duplicate denomination", "value", 5)
	l.Error("unreachable")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "solving", entries[0].Message)
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
	assert.Equal(t, "USCents239", entries[1].ContextMap()["problem"])
	assert.EqualValues(t, 14, entries[1].ContextMap()["count"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	l := Nop()
	l.Info("dropped")
	l.Sync()
}
