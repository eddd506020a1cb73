package checks

import (
	"context"
	"net"
)

// Resolver resolves a hostname to its IP address set.
// *net.Resolver satisfies it; tests substitute a fake.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

var _ Resolver = net.DefaultResolver
