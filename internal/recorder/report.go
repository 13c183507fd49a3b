package recorder

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"transferbench/internal/suite"
)

// Report buffers everything the suite emits and persists it as a YAML
// document with a unique session id, so a benchmarking campaign keeps a
// machine-readable record of every invocation.
type Report struct {
	sessionID     string
	started       time.Time
	notifications []string
	results       []string
}

// reportDocument is the on-disk shape of a report.
type reportDocument struct {
	SessionID     string   `yaml:"session_id"`
	StartedAt     string   `yaml:"started_at"`
	FinishedAt    string   `yaml:"finished_at"`
	Notifications []string `yaml:"notifications"`
	Results       []string `yaml:"results"`
}

// NewReport creates a report recorder with a fresh session id.
func NewReport() *Report {
	return &Report{
		sessionID: uuid.NewString(),
		started:   time.Now(),
	}
}

// SessionID returns the report's unique session id.
func (r *Report) SessionID() string {
	return r.sessionID
}

// Notify implements suite.Recorder.
func (r *Report) Notify(msg string) {
	r.notifications = append(r.notifications, msg)
}

// Log implements suite.Recorder. Leading newlines used for console grouping
// are stripped; the YAML list keeps one entry per line.
func (r *Report) Log(result string) {
	r.results = append(r.results, strings.TrimPrefix(result, "\n"))
}

// Write persists the report to path.
func (r *Report) Write(path string) error {
	doc := reportDocument{
		SessionID:     r.sessionID,
		StartedAt:     r.started.Format(time.RFC3339),
		FinishedAt:    time.Now().Format(time.RFC3339),
		Notifications: r.notifications,
		Results:       r.results,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

var _ suite.Recorder = (*Report)(nil)
