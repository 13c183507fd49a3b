package tools

import (
	"time"

	"transferbench/internal/suite"
)

// GoCommands drives the GoCommands iRODS client (gocmd).
type GoCommands struct {
	timeout time.Duration
}

// NewGoCommands creates a GoCommands adapter. A zero timeout falls back to
// the package default.
func NewGoCommands(commandTimeout time.Duration) *GoCommands {
	return &GoCommands{timeout: commandTimeout}
}

// Name implements suite.Tool.
func (g *GoCommands) Name() string {
	return "GoCommands"
}

// Download implements suite.Tool.
func (g *GoCommands) Download(path string) error {
	return runTransfer(g.timeout, "gocmd", "get", path)
}

// Upload implements suite.Tool.
func (g *GoCommands) Upload(path string) error {
	return runTransfer(g.timeout, "gocmd", "put", path)
}

var _ suite.Tool = (*GoCommands)(nil)
