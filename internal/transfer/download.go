package transfer

import (
	"fmt"

	"transferbench/internal/suite"
)

// DownloadTestFactory creates tests that measure downloading a data object
// of a fixed size.
type DownloadTestFactory struct {
	store ObjectStore
	size  int64
}

// NewDownloadTestFactory creates a factory for download tests of size bytes.
func NewDownloadTestFactory(store ObjectStore, size int64) *DownloadTestFactory {
	return &DownloadTestFactory{store: store, size: size}
}

// TestName implements suite.TestFactory.
func (f *DownloadTestFactory) TestName() string {
	return fmt.Sprintf("%d B download", f.size)
}

// MakeTest implements suite.TestFactory.
func (f *DownloadTestFactory) MakeTest(tool suite.Tool) suite.Test {
	return &downloadTest{tool: tool, store: f.store, size: f.size}
}

// downloadTest seeds the remote object through the object store during
// set-up (deleting the local seed copy so the download has a clean target),
// downloads it with the tool under timing, and removes both the downloaded
// file and the remote object during tear-down.
type downloadTest struct {
	tool  suite.Tool
	store ObjectStore
	size  int64
}

func (t *downloadTest) SetUp() error {
	if err := createFile(DataName, t.size); err != nil {
		return err
	}
	if err := t.store.Put(DataName, DataName); err != nil {
		return err
	}
	return removeFile(DataName)
}

func (t *downloadTest) Run() error {
	return t.tool.Download(DataName)
}

func (t *downloadTest) TearDown() error {
	fileErr := removeFile(DataName)
	storeErr := t.store.Remove(DataName)
	if fileErr != nil {
		return fileErr
	}
	return storeErr
}
