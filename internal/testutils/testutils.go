// Package testutils provides shared test doubles for TransferBench tests:
// a recorder spy and scripted tool/test stubs for driving the suite engine
// without real transfer CLIs.
package testutils

import (
	"time"

	"transferbench/internal/suite"
)

// SpyRecorder captures everything sent to it, preserving the interleaved
// order of notifications and result lines for ordering assertions.
type SpyRecorder struct {
	Notifications []string
	Results       []string
	Sequence      []string
}

// NewSpyRecorder creates an empty recorder spy.
func NewSpyRecorder() *SpyRecorder {
	return &SpyRecorder{}
}

// Notify records a notification message.
func (r *SpyRecorder) Notify(msg string) {
	r.Notifications = append(r.Notifications, msg)
	r.Sequence = append(r.Sequence, "notify: "+msg)
}

// Log records a result line.
func (r *SpyRecorder) Log(result string) {
	r.Results = append(r.Results, result)
	r.Sequence = append(r.Sequence, "log: "+result)
}

// StubTool is a scripted suite.Tool. Each transfer sleeps for Delay to give
// the timed phase a measurable, roughly constant duration. Failures are
// scripted per 1-based call number, separately for uploads and downloads.
type StubTool struct {
	ToolName      string
	Delay         time.Duration
	FailUploads   map[int]error
	FailDownloads map[int]error

	uploadCalls   int
	downloadCalls int
}

// Name returns the stub's configured tool name.
func (t *StubTool) Name() string {
	return t.ToolName
}

// Download simulates a download, failing if this call number is scripted to.
func (t *StubTool) Download(_ string) error {
	t.downloadCalls++
	if err, ok := t.FailDownloads[t.downloadCalls]; ok {
		return err
	}
	time.Sleep(t.Delay)
	return nil
}

// Upload simulates an upload, failing if this call number is scripted to.
func (t *StubTool) Upload(_ string) error {
	t.uploadCalls++
	if err, ok := t.FailUploads[t.uploadCalls]; ok {
		return err
	}
	time.Sleep(t.Delay)
	return nil
}

// StubTest is a suite.Test with scripted phase outcomes and call counters.
type StubTest struct {
	SetUpErr    error
	RunErr      error
	TearDownErr error
	RunDelay    time.Duration

	SetUpCalls    int
	RunCalls      int
	TearDownCalls int
}

// SetUp implements suite.Test.
func (t *StubTest) SetUp() error {
	t.SetUpCalls++
	return t.SetUpErr
}

// Run implements suite.Test.
func (t *StubTest) Run() error {
	t.RunCalls++
	if t.RunErr != nil {
		return t.RunErr
	}
	time.Sleep(t.RunDelay)
	return nil
}

// TearDown implements suite.Test.
func (t *StubTest) TearDown() error {
	t.TearDownCalls++
	return t.TearDownErr
}

// UploadFactory is a minimal test factory whose tests upload a fixed path
// through the tool under test. It lets suite-level tests exercise scripted
// tools without any fixture setup.
type UploadFactory struct {
	Name string
}

// TestName implements suite.TestFactory.
func (f *UploadFactory) TestName() string {
	return f.Name
}

// MakeTest implements suite.TestFactory.
func (f *UploadFactory) MakeTest(tool suite.Tool) suite.Test {
	return &transferStubTest{transfer: func() error { return tool.Upload("test") }}
}

// DownloadFactory mirrors UploadFactory for the download direction.
type DownloadFactory struct {
	Name string
}

// TestName implements suite.TestFactory.
func (f *DownloadFactory) TestName() string {
	return f.Name
}

// MakeTest implements suite.TestFactory.
func (f *DownloadFactory) MakeTest(tool suite.Tool) suite.Test {
	return &transferStubTest{transfer: func() error { return tool.Download("test") }}
}

// transferStubTest runs one transfer with no-op set-up and tear-down.
type transferStubTest struct {
	transfer func() error
}

func (t *transferStubTest) SetUp() error {
	return nil
}

func (t *transferStubTest) Run() error {
	return t.transfer()
}

func (t *transferStubTest) TearDown() error {
	return nil
}
