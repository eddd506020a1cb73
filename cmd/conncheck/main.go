package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conncheck/internal/backend"
	"conncheck/internal/checks"
	"conncheck/internal/config"
	"conncheck/internal/domain"
	"conncheck/internal/lib/logger/slogpretty"
	"conncheck/internal/output"
	"conncheck/internal/repository"
	"conncheck/internal/repository/kafka"
	"conncheck/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"

	reportPublishTimeout = 10 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env")

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return domain.ExitAllOK
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return domain.ExitAllFailed
	}

	log := setupLogger(cfg.Env)

	log.Info("starting connectivity check",
		"env", cfg.Env,
		"timeout", cfg.GetTimeout(),
		"domains", len(cfg.CheckDomains()),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	checker := checks.NewDomainChecker(cfg.GetTimeout(), log)
	printer := output.NewPrinter(os.Stdout, cfg.Verbose, cfg.Quiet)
	runner := service.NewRunner(checker, printer, log)

	startedAt := time.Now()

	printer.Header()
	outcome := runner.Run(ctx, cfg.CheckDomains())
	printer.Summary(outcome.Summary)

	if outcome.Interrupted {
		fmt.Fprintln(os.Stdout, "\nInterrupted by user")
	}

	publishReport(cfg, log, outcome, startedAt)

	return outcome.ExitCode()
}

// publishReport sends the run report to every configured sink. Sink
// failures are logged and never change the exit code.
func publishReport(cfg *config.Config, log *slog.Logger, outcome service.Outcome, startedAt time.Time) {
	sinks, closeSinks := buildSinks(cfg, log)
	defer closeSinks()
	if len(sinks) == 0 {
		return
	}

	hostname, _ := os.Hostname()
	report := domain.RunReport{
		RunID:       uuid.NewString(),
		Host:        hostname,
		StartedAt:   startedAt,
		FinishedAt:  time.Now(),
		Interrupted: outcome.Interrupted,
		Results:     outcome.Results,
		Summary:     outcome.Summary,
		ExitCode:    outcome.ExitCode(),
	}

	// The signal context may already be cancelled; reports get their own.
	ctx, cancel := context.WithTimeout(context.Background(), reportPublishTimeout)
	defer cancel()

	for _, sink := range sinks {
		if err := sink.PublishReport(ctx, report); err != nil {
			log.Warn("failed to publish run report", "error", err)
			continue
		}
		log.Info("run report published", "run_id", report.RunID)
	}
}

func buildSinks(cfg *config.Config, log *slog.Logger) ([]repository.ResultRepository, func()) {
	var sinks []repository.ResultRepository
	closeSinks := func() {}

	if cfg.KafkaReportEnabled() {
		producer := kafka.NewProducer(cfg.Report.Brokers, cfg.Report.Topic)
		closeSinks = func() { _ = producer.Close() }
		sinks = append(sinks, repository.NewKafkaResultRepository(producer))
	}

	if cfg.BackendReportEnabled() {
		client, err := backend.NewClient(cfg.Report.URL, cfg.Report.Name, cfg.Report.Token)
		if err != nil {
			log.Warn("backend report sink disabled", "error", err)
		} else {
			sinks = append(sinks, client)
		}
	}

	return sinks, closeSinks
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	slog.SetDefault(log)
	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelWarn,
		},
	}

	handler := opts.NewPrettyHandler(os.Stderr)

	return slog.New(handler)
}
