package domain

// Коды завершения процесса

const (
	ExitAllOK     = 0 // every domain fully reachable
	ExitSomeFail  = 1 // at least one domain had a DNS or port failure
	ExitAllFailed = 2 // every domain failed DNS, or config/runtime error
)

// RunSummary accumulates counters across all checked domains.
// Invariant: DNSFailures <= Failed <= Total.
type RunSummary struct {
	Total       int `json:"total"`
	Failed      int `json:"failed"`
	DNSFailures int `json:"dns_failures"`
}

// Fold adds one DomainResult to the counters. A DNS failure counts
// toward both Failed and DNSFailures; a port failure only toward Failed.
func (s *RunSummary) Fold(r DomainResult) {
	s.Total++
	if r.DNSFailed() {
		s.DNSFailures++
		s.Failed++
		return
	}
	if r.HasFailedProbe() {
		s.Failed++
	}
}

// Succeeded returns the number of fully reachable domains.
func (s *RunSummary) Succeeded() int {
	return s.Total - s.Failed
}

// ExitCode maps the counters onto the process exit status.
func (s *RunSummary) ExitCode() int {
	switch {
	case s.Total > 0 && s.DNSFailures == s.Total:
		return ExitAllFailed
	case s.Failed > 0:
		return ExitSomeFail
	default:
		return ExitAllOK
	}
}
