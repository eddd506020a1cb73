package checks

import (
	"context"
	"net"
	"strconv"
	"time"

	"conncheck/internal/domain"
)

// Dialer opens a single TCP connection. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

var _ Dialer = &net.Dialer{}

// probe attempts one TCP connect to (ip, port) within the timeout.
// A successful connection is closed immediately; no data is exchanged.
func probe(ctx context.Context, dialer Dialer, ip string, port int, timeout time.Duration) domain.ProbeResult {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addr := net.JoinHostPort(ip, strconv.Itoa(port))

	start := time.Now()
	conn, err := dialer.DialContext(dialCtx, "tcp", addr)
	duration := time.Since(start)

	result := domain.ProbeResult{
		IP:       ip,
		Port:     port,
		Duration: duration,
	}

	if err != nil {
		result.Error = err.Error()
		return result
	}

	conn.Close()
	result.OK = true
	return result
}
