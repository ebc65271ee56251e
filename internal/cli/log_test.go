package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.start = p.start.Add(-1500 * time.Millisecond)
	p.done("Analysed cell")
	assert.Contains(t, buf.String(), "Analysed cell (1.5")
}
