// Package klog is the decoder's narrow logging seam: a component is
// handed a logger at construction time rather than reaching for a
// package-level global.
package klog

import "go.uber.org/zap"

// Logger is the minimal surface fetch.Options needs. Debugw logs a
// message with alternating key/value pairs, matching
// zap.SugaredLogger.Debugw's shape so the zap-backed implementation
// (FromZap) is a one-line adapter.
type Logger interface {
	Debugw(msg string, kv ...interface{})
}

// Nop discards everything. It is the zero-value default so callers that
// don't care about decoder diagnostics never have to wire anything in.
type Nop struct{}

// Debugw implements Logger.
func (Nop) Debugw(string, ...interface{}) {}

type sugared struct {
	s *zap.SugaredLogger
}

// FromZap adapts a *zap.SugaredLogger to Logger.
func FromZap(s *zap.SugaredLogger) Logger {
	return sugared{s: s}
}

// Debugw implements Logger.
func (l sugared) Debugw(msg string, kv ...interface{}) {
	l.s.Debugw(msg, kv...)
}
