package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"conncheck/internal/domain"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// Printer renders check results to a console. Verbose adds one line
// per connection attempt; quiet keeps only domains with failures and
// drops the header and summary.
type Printer struct {
	w       io.Writer
	verbose bool
	quiet   bool
}

func NewPrinter(w io.Writer, verbose, quiet bool) *Printer {
	return &Printer{
		w:       w,
		verbose: verbose,
		quiet:   quiet,
	}
}

// Header prints the report banner. Suppressed in quiet mode.
func (p *Printer) Header() {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, "\nMicrosoft Update Connectivity Check\n")
	fmt.Fprintln(p.w, strings.Repeat("-", 50))
}

// DomainResult prints one domain line. In verbose mode the individual
// connection attempts are printed above it.
func (p *Printer) DomainResult(r domain.DomainResult) {
	if r.DNSFailed() {
		fmt.Fprintf(p.w, "[%s] %-35s DNS FAIL: %s\n", failColor.Sprint("✗"), r.Domain, r.DNSError)
		return
	}

	if p.verbose {
		for _, probe := range r.Probes {
			if probe.OK {
				fmt.Fprintf(p.w, "    Connected to %s:%d\n", probe.IP, probe.Port)
			} else {
				fmt.Fprintf(p.w, "    Failed to connect to %s:%d - %s\n", probe.IP, probe.Port, probe.Error)
			}
		}
	}

	if p.quiet && !r.HasFailedProbe() {
		return
	}

	mark := okColor.Sprint("✓")
	if r.HasFailedProbe() {
		mark = warnColor.Sprint("!")
	}

	fmt.Fprintf(p.w, "[%s] %-35s %s\n", mark, r.Domain, formatPortResults(r))
}

// Summary prints the trailing counters block. Suppressed in quiet mode.
func (p *Printer) Summary(s domain.RunSummary) {
	if p.quiet {
		return
	}

	fmt.Fprintf(p.w, "\nSummary: %d/%d domains fully accessible\n", s.Succeeded(), s.Total)
	if s.Failed > 0 {
		fmt.Fprintf(p.w, "Issues found: %d domains with connectivity problems\n", s.Failed)
	}
	if s.DNSFailures > 0 {
		fmt.Fprintf(p.w, "DNS failures: %d domains\n", s.DNSFailures)
	}
}

// formatPortResults renders "ip:[✓80,✗443] | ip2:[...]" keeping the
// probe order of the result.
func formatPortResults(r domain.DomainResult) string {
	perIP := make(map[string][]string, len(r.Addresses))
	for _, probe := range r.Probes {
		mark := "✓"
		if !probe.OK {
			mark = "✗"
		}
		perIP[probe.IP] = append(perIP[probe.IP], fmt.Sprintf("%s%d", mark, probe.Port))
	}

	parts := make([]string, 0, len(r.Addresses))
	for _, ip := range r.Addresses {
		parts = append(parts, fmt.Sprintf("%s:[%s]", ip, strings.Join(perIP[ip], ",")))
	}

	return strings.Join(parts, " | ")
}
