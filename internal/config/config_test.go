package config

import (
	"errors"
	"testing"
	"time"

	"conncheck/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Timeout != 3 {
		t.Errorf("timeout = %d, want 3", cfg.Timeout)
	}
	if cfg.GetTimeout() != 3*time.Second {
		t.Errorf("GetTimeout() = %v, want 3s", cfg.GetTimeout())
	}
	if cfg.Verbose || cfg.Quiet {
		t.Error("verbose and quiet should default to false")
	}
	if cfg.KafkaReportEnabled() || cfg.BackendReportEnabled() {
		t.Error("report sinks should be off by default")
	}

	domains := cfg.CheckDomains()
	if len(domains) != len(domain.DefaultDomains) {
		t.Fatalf("domains = %d, want %d", len(domains), len(domain.DefaultDomains))
	}
	if domains[0] != "windowsupdate.microsoft.com" {
		t.Errorf("first domain = %s", domains[0])
	}
}

func TestLoad_AppendsCustomDomains(t *testing.T) {
	cfg, err := Load([]string{"-d", "example.com", "--domains", "example.org"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	domains := cfg.CheckDomains()
	n := len(domain.DefaultDomains)
	if len(domains) != n+2 {
		t.Fatalf("domains = %d, want %d", len(domains), n+2)
	}
	if domains[n] != "example.com" || domains[n+1] != "example.org" {
		t.Errorf("appended domains wrong: %v", domains[n:])
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero timeout", args: []string{"-t", "0"}},
		{name: "negative timeout", args: []string{"--timeout", "-5"}},
		{name: "verbose and quiet conflict", args: []string{"-v", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); err == nil {
				t.Errorf("Load(%v) should have failed", tt.args)
			}
		})
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"-h"})
	if !errors.Is(err, ErrHelp) {
		t.Errorf("Load(-h) error = %v, want ErrHelp", err)
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"-t", "7", "-q", "--report-brokers", "localhost:9092", "--report-topic", "connectivity-reports"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Timeout != 7 {
		t.Errorf("timeout = %d, want 7", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("quiet should be set")
	}
	if !cfg.KafkaReportEnabled() {
		t.Error("kafka report sink should be enabled")
	}
	if cfg.Report.Topic != "connectivity-reports" {
		t.Errorf("topic = %s", cfg.Report.Topic)
	}
}
