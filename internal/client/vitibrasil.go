package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"vitibrasil/scraper/internal/config"
	"vitibrasil/scraper/internal/domain"
	"vitibrasil/scraper/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// VitibrasilClient fetches a Vitibrasil page and extracts its data table.
type VitibrasilClient interface {
	FetchTable(ctx context.Context, url string) (domain.ResultSet, error)
}

type vitibrasilClient struct {
	rl            ratelimit.Limiter
	httpClient    *resty.Client
	parser        *tableParser
	proxySupplier proxy.Supplier
}

func NewVitibrasilClient(cfg config.VitibrasilConfig, proxySupplier proxy.Supplier) VitibrasilClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "pt-BR,pt;q=0.8,en-US;q=0.5").
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})

	// Get initial proxy
	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using initial proxy: %s", proxyURL)
		}
	}

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &vitibrasilClient{
		rl:            ratelimit.New(rps),
		httpClient:    client,
		parser:        newTableParser(),
		proxySupplier: proxySupplier,
	}
}

func (c *vitibrasilClient) FetchTable(ctx context.Context, url string) (domain.ResultSet, error) {
	html, err := c.fetchHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTML: %w", err)
	}

	rows, err := c.parser.ParseTable(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data table: %w", err)
	}

	log.Debugf("Successfully fetched and parsed %d rows from %s", len(rows), url)
	return rows, nil
}

func (c *vitibrasilClient) fetchHTML(ctx context.Context, url string) (string, error) {
	c.rl.Take()

	// The upstream site is slow; give individual requests a generous timeout
	reqCtx, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	resp, err := c.httpClient.R().
		SetContext(reqCtx).
		Get(url)

	if err != nil {
		// Check if this is a context cancellation from the parent context
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}

		// Rotate to a fresh proxy and retry once before giving up
		if c.proxySupplier != nil {
			if newProxy := c.proxySupplier.Get(); newProxy != "" {
				log.Infof("🔄 Switching to new proxy: %s", newProxy)
				c.httpClient.SetProxy(newProxy)

				retryResp, retryErr := c.httpClient.R().
					SetContext(reqCtx).
					Get(url)

				if retryErr == nil && !retryResp.IsError() {
					log.Infof("✅ Retry successful with new proxy")
					return retryResp.String(), nil
				}
			}
		}

		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return resp.String(), nil
}
