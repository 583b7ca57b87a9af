package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dupidx/internal/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)
	return logger.New(buf), buf
}

func TestLogger_Info(t *testing.T) {
	log, buf := newTestLogger(t)

	log.Info("interned input", "distinct", 2, "total", 5)

	out := buf.String()
	assert.Contains(t, out, "interned input")
	assert.Contains(t, out, "distinct=2")
	assert.Contains(t, out, "total=5")
}

func TestLogger_Warn(t *testing.T) {
	log, buf := newTestLogger(t)

	log.Warn("something odd")

	assert.Contains(t, buf.String(), "! something odd")
}

func TestLogger_Error(t *testing.T) {
	t.Run("nil error logs nothing", func(t *testing.T) {
		log, buf := newTestLogger(t)

		log.Error(nil)

		assert.Empty(t, buf.String())
	})

	t.Run("standard error", func(t *testing.T) {
		log, buf := newTestLogger(t)

		log.Error(errors.New("boom"))

		assert.Contains(t, buf.String(), "Error: boom")
	})

	t.Run("zerr chain renders causes", func(t *testing.T) {
		log, buf := newTestLogger(t)

		err := zerr.Wrap(errors.New("permission denied"), "failed to open input")
		log.Error(err)

		out := buf.String()
		assert.Contains(t, out, "Error: failed to open input")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "→ permission denied")
	})
}
