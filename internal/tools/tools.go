// Package tools provides the transfer tool adapters whose performance the
// suite compares. Each adapter shells out to its CLI and translates a
// non-zero exit (with the captured error stream) into a suite.TransferFailure.
package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"transferbench/internal/logger"
	"transferbench/internal/suite"
)

// DefaultCommandTimeout bounds how long a single transfer subprocess may
// run before it is killed and the run is reported as failed.
const DefaultCommandTimeout = 10 * time.Minute

// runTransfer executes a transfer CLI and converts any failure into a
// TransferFailure carrying the trimmed stderr output.
func runTransfer(timeout time.Duration, name string, args ...string) error {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug("running transfer command", "command", name, "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if ctx.Err() == context.DeadlineExceeded {
			reason = fmt.Sprintf("%s timed out after %s", name, timeout)
		}
		if reason == "" {
			reason = err.Error()
		}
		return &suite.TransferFailure{Reason: reason}
	}
	return nil
}
