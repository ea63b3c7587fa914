package proxy

import (
	"context"
	"crypto/tls"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

// Startup validation is bounded: each proxy gets one short-deadline
// request, with at most maxParallelChecks in flight at once.
const (
	validationTimeout = 5 * time.Second
	maxParallelChecks = 50
)

// Supplier hands out proxy URLs, one per call.
type Supplier interface {
	Get() string
}

type supplier struct {
	mu   sync.Mutex
	pool []string
	next int
}

// NewSupplier validates the configured proxies against testURL and keeps
// the ones that answer. With no proxies configured, or none usable, the
// supplier is inert and Get returns "".
func NewSupplier(ctx context.Context, proxies []string, testURL string) (Supplier, error) {
	s := &supplier{}
	if len(proxies) == 0 {
		return s, nil
	}

	log.Infof("🔄 Validating %d proxies against %s", len(proxies), testURL)

	var g errgroup.Group
	g.SetLimit(maxParallelChecks)

	for _, proxyURL := range proxies {
		g.Go(func() error {
			if !checkProxy(ctx, proxyURL, testURL) {
				log.Infof("❌ Dropping proxy %s", proxyURL)
				return nil
			}

			log.Infof("✅ Proxy %s is usable", proxyURL)

			s.mu.Lock()
			s.pool = append(s.pool, proxyURL)
			s.mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("✅ Proxy pool ready: %d of %d usable", len(s.pool), len(proxies))

	return s, nil
}

// Get returns the next proxy in rotation, or "" when the pool is empty.
func (s *supplier) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) == 0 {
		return ""
	}

	proxyURL := s.pool[s.next]
	s.next = (s.next + 1) % len(s.pool)

	return proxyURL
}

// checkProxy sends a single request for testURL through the proxy and
// reports whether it came back clean.
func checkProxy(ctx context.Context, proxyURL, testURL string) bool {
	client := resty.New().
		SetTimeout(validationTimeout).
		SetRetryCount(0).
		SetProxy(proxyURL).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})

	resp, err := client.R().
		SetContext(ctx).
		Get(testURL)

	if err != nil {
		log.Debugf("Proxy check for %s: %v", proxyURL, err)
		return false
	}

	if resp.IsError() {
		log.Debugf("Proxy check for %s: %s", proxyURL, resp.Status())
		return false
	}

	return true
}
