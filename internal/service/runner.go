package service

import (
	"context"
	"log/slog"

	"conncheck/internal/domain"
)

// Checker performs the full check for a single domain.
type Checker interface {
	CheckDomain(ctx context.Context, name string) domain.DomainResult
}

// Printer renders one completed DomainResult. Rendering happens in
// input order, one domain at a time.
type Printer interface {
	DomainResult(r domain.DomainResult)
}

// Outcome is what one run produced: the accumulated counters, every
// per-domain result in input order, and whether the run was cut short.
type Outcome struct {
	Summary     domain.RunSummary
	Results     []domain.DomainResult
	Interrupted bool
}

// ExitCode maps the outcome onto the process exit status. An
// interrupted run is reported as "some failed" when at least one
// domain was checked, and as a total failure when none were.
func (o *Outcome) ExitCode() int {
	if o.Interrupted {
		if o.Summary.Total == 0 {
			return domain.ExitAllFailed
		}
		if code := o.Summary.ExitCode(); code != domain.ExitAllOK {
			return code
		}
		return domain.ExitSomeFail
	}
	return o.Summary.ExitCode()
}

// Runner drives checks over an ordered domain list, one domain at a
// time, and folds each result into the run summary. Duplicates in the
// list are checked independently.
type Runner struct {
	checker Checker
	printer Printer
	log     *slog.Logger
}

func NewRunner(checker Checker, printer Printer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}

	return &Runner{
		checker: checker,
		printer: printer,
		log:     log,
	}
}

// Run checks every domain in order. Cancelling ctx stops the sequence
// before the next domain; whatever was accumulated so far is kept.
func (r *Runner) Run(ctx context.Context, domains []string) Outcome {
	var outcome Outcome

	r.log.Info("starting connectivity checks", "domains", len(domains))

	for _, name := range domains {
		select {
		case <-ctx.Done():
			r.log.Warn("run interrupted", "checked", outcome.Summary.Total, "remaining", len(domains)-outcome.Summary.Total)
			outcome.Interrupted = true
			return outcome
		default:
		}

		result := r.checker.CheckDomain(ctx, name)
		outcome.Summary.Fold(result)
		outcome.Results = append(outcome.Results, result)

		if r.printer != nil {
			r.printer.DomainResult(result)
		}
	}

	r.log.Info("checks finished",
		"total", outcome.Summary.Total,
		"failed", outcome.Summary.Failed,
		"dns_failures", outcome.Summary.DNSFailures,
	)

	return outcome
}
