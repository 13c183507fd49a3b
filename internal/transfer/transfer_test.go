package transfer

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferbench/internal/suite"
)

// fakeStore records object-store calls and can be scripted to fail.
type fakeStore struct {
	putCalls    []string
	removeCalls []string
	putErr      error
	removeErr   error

	// objectPresent tracks whether the remote fixture object exists.
	objectPresent bool
}

func (s *fakeStore) Put(localPath, name string) error {
	s.putCalls = append(s.putCalls, localPath+"->"+name)
	if s.putErr != nil {
		return s.putErr
	}
	s.objectPresent = true
	return nil
}

func (s *fakeStore) Remove(name string) error {
	s.removeCalls = append(s.removeCalls, name)
	if s.removeErr != nil {
		return s.removeErr
	}
	s.objectPresent = false
	return nil
}

// recordingTool notes transfer calls and simulates a download by creating
// the local file.
type recordingTool struct {
	uploads   []string
	downloads []string
}

func (t *recordingTool) Name() string {
	return "recording"
}

func (t *recordingTool) Upload(path string) error {
	t.uploads = append(t.uploads, path)
	return nil
}

func (t *recordingTool) Download(path string) error {
	t.downloads = append(t.downloads, path)
	return createFile(path, 1)
}

// chdir mirrors testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestFactoryNames(t *testing.T) {
	store := &fakeStore{}

	assert.Equal(t, "1048576 B upload", NewUploadTestFactory(store, 1048576).TestName())
	assert.Equal(t, "1048576 B download", NewDownloadTestFactory(store, 1048576).TestName())
}

func TestUploadTest_Lifecycle(t *testing.T) {
	chdir(t, t.TempDir())
	store := &fakeStore{}
	tool := &recordingTool{}
	test := NewUploadTestFactory(store, 2048).MakeTest(tool)

	require.NoError(t, test.SetUp())

	info, err := os.Stat(DataName)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), info.Size())
	assert.Equal(t, []string{DataName}, store.removeCalls, "set-up clears stale objects")

	require.NoError(t, test.Run())
	assert.Equal(t, []string{DataName}, tool.uploads)

	require.NoError(t, test.TearDown())
	assert.NoFileExists(t, DataName)
	assert.Equal(t, []string{DataName, DataName}, store.removeCalls)
}

func TestDownloadTest_Lifecycle(t *testing.T) {
	chdir(t, t.TempDir())
	store := &fakeStore{}
	tool := &recordingTool{}
	test := NewDownloadTestFactory(store, 4096).MakeTest(tool)

	require.NoError(t, test.SetUp())
	assert.Equal(t, []string{DataName + "->" + DataName}, store.putCalls)
	assert.True(t, store.objectPresent)
	assert.NoFileExists(t, DataName, "the seed copy is deleted before the timed run")

	require.NoError(t, test.Run())
	assert.Equal(t, []string{DataName}, tool.downloads)
	assert.FileExists(t, DataName)

	require.NoError(t, test.TearDown())
	assert.NoFileExists(t, DataName)
	assert.False(t, store.objectPresent)
}

func TestDownloadTest_SetUpFailurePropagates(t *testing.T) {
	chdir(t, t.TempDir())
	putErr := errors.New("session unreachable")
	store := &fakeStore{putErr: putErr}
	test := NewDownloadTestFactory(store, 16).MakeTest(&recordingTool{})

	err := test.SetUp()

	require.ErrorIs(t, err, putErr)
}

func TestUploadTest_PerformCleansUpAfterFailedRun(t *testing.T) {
	chdir(t, t.TempDir())
	store := &fakeStore{}
	failing := &failingTool{err: &suite.TransferFailure{Reason: "rejected"}}
	factory := NewUploadTestFactory(store, 128)

	elapsed, err := suite.Perform(factory.MakeTest(failing))

	require.Error(t, err)
	assert.Zero(t, elapsed)
	assert.NoFileExists(t, DataName, "tear-down removes the fixture file after a failed run")
}

func TestUploadTest_PerformMeasuresDuration(t *testing.T) {
	chdir(t, t.TempDir())
	store := &fakeStore{}
	factory := NewUploadTestFactory(store, 128)

	elapsed, err := suite.Perform(factory.MakeTest(&recordingTool{}))

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
	assert.NoFileExists(t, DataName)
}

func TestCreateFile_SizeAndRemove(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, createFile(DataName, 512))
	info, err := os.Stat(DataName)
	require.NoError(t, err)
	assert.Equal(t, int64(512), info.Size())

	require.NoError(t, removeFile(DataName))
	require.NoError(t, removeFile(DataName), "removing a missing file is not an error")
}

// failingTool fails every transfer.
type failingTool struct {
	err error
}

func (t *failingTool) Name() string {
	return "failing"
}

func (t *failingTool) Upload(string) error {
	return t.err
}

func (t *failingTool) Download(string) error {
	return t.err
}
