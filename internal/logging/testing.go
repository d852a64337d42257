package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Observed is a logger whose entries are kept in memory for assertions.
type Observed struct {
	*zap.Logger
	logs *observer.ObservedLogs
}

// NewObserved returns a debug-level logger backed by a zap observer.
func NewObserved() *Observed {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Observed{Logger: zap.New(core), logs: logs}
}

// All returns every entry logged so far.
func (o *Observed) All() []observer.LoggedEntry {
	return o.logs.All()
}

// AssertLogged fails tb unless an entry at level contains msg.
func (o *Observed) AssertLogged(tb testing.TB, level zapcore.Level, msg string) {
	tb.Helper()
	for _, e := range o.logs.All() {
		if e.Level == level && strings.Contains(e.Message, msg) {
			return
		}
	}
	tb.Errorf("expected log at %v containing %q, got %+v", level, msg, o.logs.All())
}

// AssertNotLogged fails tb if any entry at level contains msg.
func (o *Observed) AssertNotLogged(tb testing.TB, level zapcore.Level, msg string) {
	tb.Helper()
	for _, e := range o.logs.All() {
		if e.Level == level && strings.Contains(e.Message, msg) {
			tb.Errorf("unexpected log at %v containing %q", level, msg)
		}
	}
}
