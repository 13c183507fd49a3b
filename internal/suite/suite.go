// Package suite provides the performance comparison engine for TransferBench.
// Given a set of transfer tools and a set of transfer actions, it repeatedly
// times each tool performing each action and reports the geometric mean and
// one-geometric-standard-deviation interval of the measured durations.
//
// The suite runs strictly sequentially: overlapping transfers would contend
// for bandwidth, the remote storage session, and the shared local fixture
// file, corrupting the wall-clock measurements.
package suite

import (
	"time"

	"transferbench/internal/logger"
)

// Recorder delivers progress notifications and result lines to the caller.
// Implementations must tolerate repeated synchronous calls; the suite never
// invokes a Recorder concurrently.
type Recorder interface {
	// Notify sends a progress or failure narration message.
	Notify(msg string)

	// Log sends a final aggregate result line.
	Log(result string)
}

// Tool is a transfer tool whose performance is being measured.
type Tool interface {
	// Name identifies the tool in notifications and result lines.
	Name() string

	// Download fetches a copy of the remote data object at path, writing it
	// to the same path relative to the current working directory.
	Download(path string) error

	// Upload stores the local file at path as a remote data object at the
	// same path relative to the current working collection.
	Upload(path string) error
}

// Test is a single timed exercise of a tool. A test passes through three
// phases: SetUp prepares the fixture, Run performs the action under timing,
// and TearDown cleans up. A Test instance is good for exactly one Perform.
type Test interface {
	SetUp() error
	Run() error
	TearDown() error
}

// TestFactory creates Test instances for one action with fixed fixture
// parameters (such as payload size).
type TestFactory interface {
	// TestName is the human-readable name of the action under test.
	TestName() string

	// MakeTest creates a test that uses the given tool to perform the action.
	MakeTest(tool Tool) Test
}

// TransferFailure indicates that a tool could not complete an upload or
// download, typically because the underlying CLI exited non-zero.
type TransferFailure struct {
	Reason string
}

// Error implements the error interface.
func (f *TransferFailure) Error() string {
	if f.Reason == "" {
		return "transfer failed"
	}
	return f.Reason
}

// Perform runs a test through its full lifecycle and returns how long the
// timed run phase took. TearDown is invoked on every exit path, including
// set-up and run failures. A tear-down failure is swallowed: it never masks
// an earlier failure and never surfaces on its own, since stale state left
// behind is corrected by the next test's set-up.
func Perform(t Test) (elapsed time.Duration, err error) {
	defer func() {
		if terr := t.TearDown(); terr != nil {
			logger.Debug("test tear-down failed", "error", terr)
		}
	}()

	if err = t.SetUp(); err != nil {
		return 0, err
	}

	start := time.Now()
	if err = t.Run(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
