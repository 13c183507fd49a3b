// Package irods provides the storage-session backend that the transfer
// fixtures use to seed and clean up the remote data object. It shells out
// to the native iCommands, which must be installed and authenticated for
// the zone where performance testing happens.
package irods

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"transferbench/internal/logger"
	"transferbench/internal/transfer"
)

// EnvFileVar names the environment variable that points at the iRODS
// environment file.
const EnvFileVar = "IRODS_ENVIRONMENT_FILE"

// Environment holds the subset of the iRODS environment file needed to
// resolve the logical path of the fixture object.
type Environment struct {
	Zone string `json:"irods_zone_name"`
	User string `json:"irods_user_name"`
}

// EnvironmentFilePath returns the path of the iRODS environment file:
// $IRODS_ENVIRONMENT_FILE if set, otherwise the standard location under
// the user's home directory.
func EnvironmentFilePath() string {
	if path := os.Getenv(EnvFileVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".irods", "irods_environment.json")
	}
	return filepath.Join(home, ".irods", "irods_environment.json")
}

// LoadEnvironment reads and parses an iRODS environment file.
func LoadEnvironment(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read iRODS environment file %s: %w", path, err)
	}

	var env Environment
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse iRODS environment file %s: %w", path, err)
	}
	if env.Zone == "" || env.User == "" {
		return nil, fmt.Errorf("iRODS environment file %s is missing the zone or user name", path)
	}
	return &env, nil
}

// Session implements transfer.ObjectStore against the current working
// collection of the authenticated iRODS user.
type Session struct {
	env     *Environment
	timeout time.Duration
}

// NewSession creates a session from the standard iRODS environment file
// lookup. Commands run with the given timeout; zero means one minute per
// fixture operation.
func NewSession(commandTimeout time.Duration) (*Session, error) {
	env, err := LoadEnvironment(EnvironmentFilePath())
	if err != nil {
		return nil, err
	}
	return NewSessionWithEnvironment(env, commandTimeout), nil
}

// NewSessionWithEnvironment creates a session for an already loaded
// environment.
func NewSessionWithEnvironment(env *Environment, commandTimeout time.Duration) *Session {
	if commandTimeout <= 0 {
		commandTimeout = time.Minute
	}
	return &Session{env: env, timeout: commandTimeout}
}

// ObjectPath returns the absolute logical path of the named data object in
// the user's home collection.
func (s *Session) ObjectPath(name string) string {
	return fmt.Sprintf("/%s/home/%s/%s", s.env.Zone, s.env.User, name)
}

// Put implements transfer.ObjectStore by force-uploading the local file.
func (s *Session) Put(localPath, name string) error {
	return s.runICommand("iput", "-f", localPath, s.ObjectPath(name))
}

// Remove implements transfer.ObjectStore. A missing object is not an error;
// the fixture only cares that the object is gone afterwards.
func (s *Session) Remove(name string) error {
	path := s.ObjectPath(name)
	if !s.exists(path) {
		return nil
	}
	return s.runICommand("irm", "-f", path)
}

// exists probes the object with ils; a non-zero exit means it is absent.
func (s *Session) exists(path string) bool {
	return s.runICommand("ils", path) == nil
}

func (s *Session) runICommand(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug("running session command", "command", name, "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = err.Error()
		}
		return fmt.Errorf("%s failed: %s", name, reason)
	}
	return nil
}

var _ transfer.ObjectStore = (*Session)(nil)
