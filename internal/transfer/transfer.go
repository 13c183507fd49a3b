// Package transfer provides the upload and download test fixtures used by
// the performance suite. Both fixtures work on a single local file and a
// single remote data object, both named "test", created before the timed
// run and removed afterwards.
package transfer

import (
	"errors"
	"fmt"
	"os"
)

// DataName is the shared name of the local fixture file and the remote data
// object. The suite runs sequentially, so one name never collides.
const DataName = "test"

// ObjectStore manages the remote data object backing a fixture. It is the
// storage-session collaborator of the fixtures; the tool under test is
// deliberately not used for fixture setup or cleanup.
type ObjectStore interface {
	// Put stores the local file at localPath as the remote object name,
	// replacing any existing object.
	Put(localPath, name string) error

	// Remove deletes the remote object name if it exists.
	Remove(name string) error
}

// createFile creates a local file of exactly size bytes by truncation.
func createFile(name string, size int64) error {
	file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s of size %d B: %w", name, size, err)
	}
	defer func() { _ = file.Close() }()

	if err := file.Truncate(size); err != nil {
		return fmt.Errorf("failed to create file %s of size %d B: %w", name, size, err)
	}
	return nil
}

// removeFile deletes a local file, treating a missing file as success.
func removeFile(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove file %s: %w", name, err)
	}
	return nil
}
