package domain

import "time"

// ProbeResult is the outcome of a single TCP connect attempt
// against one (address, port) pair. Each pair is attempted exactly once.
type ProbeResult struct {
	IP       string        `json:"ip"`
	Port     int           `json:"port"`
	OK       bool          `json:"ok"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DomainResult aggregates everything learned about one domain:
// the resolved address set (or the DNS error) and every probe outcome.
type DomainResult struct {
	Domain    string        `json:"domain"`
	Addresses []string      `json:"addresses"`
	DNSError  string        `json:"dns_error,omitempty"`
	Probes    []ProbeResult `json:"probes"`
}

// DNSFailed reports whether resolution itself failed. When it did,
// no probes were attempted for the domain.
func (r *DomainResult) DNSFailed() bool {
	return r.DNSError != ""
}

// HasFailedProbe reports whether any (address, port) pair was unreachable.
func (r *DomainResult) HasFailedProbe() bool {
	for _, p := range r.Probes {
		if !p.OK {
			return true
		}
	}
	return false
}

// FullyReachable is true iff DNS resolution succeeded and every probe
// across all addresses and ports succeeded. A resolution that returns
// zero addresses counts as fully reachable: there is nothing to probe.
func (r *DomainResult) FullyReachable() bool {
	return !r.DNSFailed() && !r.HasFailedProbe()
}
