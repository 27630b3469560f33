package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	t.Run("valid levels", func(t *testing.T) {
		for _, lvl := range []string{"debug", "info", "warn", "error"} {
			assert.NoError(t, Initialize(lvl), "level %s", lvl)
			assert.NotNil(t, Log)
			assert.NotPanics(t, func() {
				Log.Infow("initialized", "level", lvl)
			})
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, Initialize("not-a-level"))
	})
}

func TestLog_UsableBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("no-op logger")
	})
}
