package domain

import "testing"

func TestDomainResult_FullyReachable(t *testing.T) {
	tests := []struct {
		name   string
		result DomainResult
		want   bool
	}{
		{
			name: "all probes ok",
			result: DomainResult{
				Addresses: []string{"192.0.2.1", "192.0.2.2"},
				Probes: []ProbeResult{
					{IP: "192.0.2.1", Port: 80, OK: true},
					{IP: "192.0.2.1", Port: 443, OK: true},
					{IP: "192.0.2.2", Port: 80, OK: true},
					{IP: "192.0.2.2", Port: 443, OK: true},
				},
			},
			want: true,
		},
		{
			name:   "dns failed",
			result: DomainResult{DNSError: "no such host"},
			want:   false,
		},
		{
			name: "one broken ip marks the whole domain",
			result: DomainResult{
				Addresses: []string{"192.0.2.1", "192.0.2.2"},
				Probes: []ProbeResult{
					{IP: "192.0.2.1", Port: 80, OK: true},
					{IP: "192.0.2.1", Port: 443, OK: true},
					{IP: "192.0.2.2", Port: 80, OK: true},
					{IP: "192.0.2.2", Port: 443, OK: false, Error: "i/o timeout"},
				},
			},
			want: false,
		},
		{
			name:   "zero addresses is vacuously reachable",
			result: DomainResult{Addresses: []string{}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.FullyReachable(); got != tt.want {
				t.Errorf("FullyReachable() = %v, want %v", got, tt.want)
			}
		})
	}
}
