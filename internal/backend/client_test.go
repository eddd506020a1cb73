package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conncheck/internal/domain"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets scheme", raw: "reports.internal:8080", want: "http://reports.internal:8080"},
		{name: "trailing slash trimmed", raw: "https://reports.internal/", want: "https://reports.internal"},
		{name: "query and fragment dropped", raw: "https://reports.internal/base?x=1#y", want: "https://reports.internal/base"},
		{name: "empty is rejected", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("normalizeBaseURL(%q) should fail", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeBaseURL(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("normalizeBaseURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClient_PublishReport(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotReport domain.RunReport

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotReport); err != nil {
			t.Errorf("decode report: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "edge-01", "secret")
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	report := domain.RunReport{
		RunID:      "run-1",
		Host:       "edge-01",
		StartedAt:  time.Now().Add(-time.Second),
		FinishedAt: time.Now(),
		Summary:    domain.RunSummary{Total: 6, Failed: 1, DNSFailures: 1},
		ExitCode:   domain.ExitSomeFail,
	}

	if err := client.PublishReport(context.Background(), report); err != nil {
		t.Fatalf("PublishReport() error: %v", err)
	}

	if gotPath != "/api/connectivity/reports" {
		t.Errorf("path = %s", gotPath)
	}
	if gotUser != "edge-01" || gotPass != "secret" {
		t.Errorf("basic auth = %s/%s", gotUser, gotPass)
	}
	if gotReport.RunID != "run-1" || gotReport.Summary.Failed != 1 {
		t.Errorf("report round-trip mismatch: %+v", gotReport)
	}
}

func TestClient_PublishReportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broker down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "edge-01", "")
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	if err := client.PublishReport(context.Background(), domain.RunReport{RunID: "run-2"}); err == nil {
		t.Error("expected error on 502 response")
	}
}
