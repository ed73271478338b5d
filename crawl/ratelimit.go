package crawl

import (
	"context"
	"sync"

	"github.com/cdpdoc/cdpdoc"
	"golang.org/x/time/rate"
)

var _ cdpdoc.DomainLimiter = (*DomainLimiter)(nil)

// DefaultRPS is the per-domain request rate a documentation crawl
// should not exceed.
const DefaultRPS = 2.0

// DomainLimiter enforces a per-domain request rate with token buckets.
// Each documentation host gets its own limiter, so crawling several
// CDP sites concurrently never throttles one site because of another.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second per domain. Each domain gets a burst of 1: no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
