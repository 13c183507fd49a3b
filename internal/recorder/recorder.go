// Package recorder provides the Recorder implementations the harness wires
// into the suite: console narration, a persisted YAML report, and a fan-out
// combinator.
package recorder

import "transferbench/internal/suite"

// Multi fans every recorder call out to each wrapped recorder, in order.
type Multi struct {
	recorders []suite.Recorder
}

// NewMulti combines several recorders into one.
func NewMulti(recorders ...suite.Recorder) *Multi {
	return &Multi{recorders: recorders}
}

// Notify implements suite.Recorder.
func (m *Multi) Notify(msg string) {
	for _, r := range m.recorders {
		r.Notify(msg)
	}
}

// Log implements suite.Recorder.
func (m *Multi) Log(result string) {
	for _, r := range m.recorders {
		r.Log(result)
	}
}
