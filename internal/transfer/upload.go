package transfer

import (
	"fmt"

	"transferbench/internal/suite"
)

// UploadTestFactory creates tests that measure uploading a file of a fixed
// size.
type UploadTestFactory struct {
	store ObjectStore
	size  int64
}

// NewUploadTestFactory creates a factory for upload tests of size bytes.
func NewUploadTestFactory(store ObjectStore, size int64) *UploadTestFactory {
	return &UploadTestFactory{store: store, size: size}
}

// TestName implements suite.TestFactory.
func (f *UploadTestFactory) TestName() string {
	return fmt.Sprintf("%d B upload", f.size)
}

// MakeTest implements suite.TestFactory.
func (f *UploadTestFactory) MakeTest(tool suite.Tool) suite.Test {
	return &uploadTest{tool: tool, store: f.store, size: f.size}
}

// uploadTest creates the local fixture file during set-up, uploads it with
// the tool under timing, and removes both the uploaded object and the local
// file during tear-down.
type uploadTest struct {
	tool  suite.Tool
	store ObjectStore
	size  int64
}

func (t *uploadTest) SetUp() error {
	// Clear any stale object left behind by an earlier, interrupted run.
	if err := t.store.Remove(DataName); err != nil {
		return err
	}
	return createFile(DataName, t.size)
}

func (t *uploadTest) Run() error {
	return t.tool.Upload(DataName)
}

func (t *uploadTest) TearDown() error {
	storeErr := t.store.Remove(DataName)
	fileErr := removeFile(DataName)
	if storeErr != nil {
		return storeErr
	}
	return fileErr
}
