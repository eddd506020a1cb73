package checks

import (
	"context"
	"log/slog"
	"net"
	"time"

	"conncheck/internal/domain"
)

const defaultTimeout = 3 * time.Second

// DomainChecker produces a DomainResult for one domain: DNS resolution
// followed by a TCP connect probe against every (address, port) pair.
type DomainChecker struct {
	resolver Resolver
	dialer   Dialer
	ports    []int
	timeout  time.Duration
	log      *slog.Logger
}

func NewDomainChecker(timeout time.Duration, log *slog.Logger) *DomainChecker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}

	return &DomainChecker{
		resolver: net.DefaultResolver,
		dialer:   &net.Dialer{},
		ports:    domain.TargetPorts,
		timeout:  timeout,
		log:      log,
	}
}

// WithResolver overrides the DNS resolver. Primarily useful for testing.
func (c *DomainChecker) WithResolver(r Resolver) *DomainChecker {
	if r != nil {
		c.resolver = r
	}
	return c
}

// WithDialer overrides the TCP dialer. Primarily useful for testing.
func (c *DomainChecker) WithDialer(d Dialer) *DomainChecker {
	if d != nil {
		c.dialer = d
	}
	return c
}

// WithPorts overrides the probed port set, keeping the given order.
func (c *DomainChecker) WithPorts(ports []int) *DomainChecker {
	if len(ports) > 0 {
		c.ports = ports
	}
	return c
}

// CheckDomain resolves name and probes every resolved address on every
// target port, in resolution order then port order. A resolution error
// is terminal for the domain: no probes are attempted. A failed probe
// never aborts the remaining (address, port) pairs.
func (c *DomainChecker) CheckDomain(ctx context.Context, name string) domain.DomainResult {
	result := domain.DomainResult{Domain: name}

	lookupCtx, cancel := context.WithTimeout(ctx, c.timeout)
	addrs, err := c.resolver.LookupHost(lookupCtx, name)
	cancel()
	if err != nil {
		result.DNSError = err.Error()
		c.log.Debug("dns resolution failed", "domain", name, "error", err)
		return result
	}

	result.Addresses = addrs
	c.log.Debug("dns resolved", "domain", name, "addresses", len(addrs))

	for _, ip := range addrs {
		for _, port := range c.ports {
			p := probe(ctx, c.dialer, ip, port, c.timeout)
			result.Probes = append(result.Probes, p)
			if p.OK {
				c.log.Debug("probe ok", "domain", name, "ip", ip, "port", port, "duration", p.Duration)
			} else {
				c.log.Debug("probe failed", "domain", name, "ip", ip, "port", port, "error", p.Error)
			}
		}
	}

	return result
}
