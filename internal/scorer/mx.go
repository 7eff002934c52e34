package scorer

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MXPolicy controls whether email scoring performs a live MX lookup.
// Unchecked and Disabled score identically; the distinction records caller
// intent (flag never passed vs explicitly turned off).
type MXPolicy int

const (
	MXUnchecked MXPolicy = iota
	MXDisabled
	MXEnabled
)

// MXResolver is the DNS capability the scorer depends on. A nil resolver
// means DNS is unavailable and the MX boost is simply never granted.
type MXResolver interface {
	// HasMX reports whether the domain has at least one MX record.
	// Lookup failures of any kind report false, never an error.
	HasMX(ctx context.Context, domain string) bool
}

// NetMXResolver resolves MX records with the system resolver, bounded by a
// per-lookup timeout and a lookup rate limit.
type NetMXResolver struct {
	resolver *net.Resolver
	timeout  time.Duration
	limiter  *rate.Limiter
}

// NewNetMXResolver creates a resolver with the given per-lookup timeout and
// maximum lookups per second (0 = unlimited).
func NewNetMXResolver(timeout time.Duration, lookupsPerSec float64) *NetMXResolver {
	r := &NetMXResolver{
		resolver: net.DefaultResolver,
		timeout:  timeout,
	}
	if lookupsPerSec > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(lookupsPerSec), 1)
	}
	return r
}

// HasMX implements MXResolver.
func (r *NetMXResolver) HasMX(ctx context.Context, domain string) bool {
	if domain == "" {
		return false
	}
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return false
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	records, err := r.resolver.LookupMX(ctx, domain)
	if err != nil {
		zap.L().Debug("scorer: mx lookup failed",
			zap.String("domain", domain),
			zap.Error(err),
		)
		return false
	}
	return len(records) > 0
}
