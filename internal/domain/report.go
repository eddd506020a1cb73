package domain

import "time"

// RunReport is the wire payload published to the optional report sinks
// after a run completes. One report per invocation.
type RunReport struct {
	RunID       string         `json:"run_id"`
	Host        string         `json:"host"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
	Interrupted bool           `json:"interrupted,omitempty"`
	Results     []DomainResult `json:"results"`
	Summary     RunSummary     `json:"summary"`
	ExitCode    int            `json:"exit_code"`
}
