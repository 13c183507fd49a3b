package tools

import (
	"time"

	"transferbench/internal/suite"
)

// ICommands drives the native iRODS command-line tools (iget/iput).
type ICommands struct {
	timeout time.Duration
}

// NewICommands creates an iCommands adapter. A zero timeout falls back to
// the package default.
func NewICommands(commandTimeout time.Duration) *ICommands {
	return &ICommands{timeout: commandTimeout}
}

// Name implements suite.Tool.
func (i *ICommands) Name() string {
	return "iCommands"
}

// Download implements suite.Tool.
func (i *ICommands) Download(path string) error {
	return runTransfer(i.timeout, "iget", path)
}

// Upload implements suite.Tool.
func (i *ICommands) Upload(path string) error {
	return runTransfer(i.timeout, "iput", path)
}

var _ suite.Tool = (*ICommands)(nil)
