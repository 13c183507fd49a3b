package recorder

import (
	"transferbench/internal/logger"
	"transferbench/internal/output"
	"transferbench/internal/suite"
)

// Console narrates suite progress through the structured logger and writes
// result lines through the console printer, so aggregates stay on stdout
// while narration goes to the log destination.
type Console struct {
	printer *output.Printer
}

// NewConsole creates a console recorder. A nil printer uses the global one.
func NewConsole(printer *output.Printer) *Console {
	if printer == nil {
		printer = output.GetGlobalPrinter()
	}
	return &Console{printer: printer}
}

// Notify implements suite.Recorder.
func (c *Console) Notify(msg string) {
	logger.Info(msg)
}

// Log implements suite.Recorder.
func (c *Console) Log(result string) {
	c.printer.Println(result)
}

var _ suite.Recorder = (*Console)(nil)
