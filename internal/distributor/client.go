package distributor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/powercrux/part-advisor/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum spacing between outbound requests,
// shared across both distributors and across concurrent searches.
const DefaultMinInterval = 3 * time.Second

// DefaultTimeout is the per-attempt HTTP timeout.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the advisor politely to distributor sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; PartAdvisor/1.0)"

// Category landing pages per component kind. Hitting category pages instead
// of free search keeps the request footprint predictable.
var mouserCategories = map[types.ComponentKind]string{
	types.KindMOSFET:          "/c/semiconductors/discrete-semiconductors/transistors/mosfets-single/",
	types.KindOutputCapacitor: "/c/passive-components/capacitors/",
	types.KindInputCapacitor:  "/c/passive-components/capacitors/aluminum-electrolytic-capacitors/",
	types.KindInductor:        "/c/passive-components/inductors-coils-chokes/",
}

var digikeyCategories = map[types.ComponentKind]string{
	types.KindMOSFET:          "/en/products/filter/transistors-fets-mosfets-single/278",
	types.KindOutputCapacitor: "/en/products/filter/capacitors/58",
	types.KindInputCapacitor:  "/en/products/filter/capacitors/58",
	types.KindInductor:        "/en/products/filter/inductors/71",
}

// Config tunes the lookup client. Zero values take documented defaults.
// The base URLs exist so tests can point the client at a local server.
type Config struct {
	MinInterval    time.Duration
	Timeout        time.Duration
	UserAgent      string
	Policy         RetryPolicy
	UseBrowser     bool
	BrowserTimeout time.Duration

	MouserBaseURL  string
	DigikeyBaseURL string
}

func (c Config) withDefaults() Config {
	if c.MinInterval <= 0 {
		c.MinInterval = DefaultMinInterval
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Policy.MaxAttempts == 0 && c.Policy.RateLimitBackoff == nil {
		c.Policy = DefaultRetryPolicy()
	}
	if c.BrowserTimeout <= 0 {
		c.BrowserTimeout = 30 * time.Second
	}
	if c.MouserBaseURL == "" {
		c.MouserBaseURL = "https://www.mouser.com"
	}
	if c.DigikeyBaseURL == "" {
		c.DigikeyBaseURL = "https://www.digikey.com"
	}
	return c
}

// Client performs rate-limited distributor lookups. The limiter is the one
// genuinely shared mutable resource: a single-slot token bucket serializing
// the minimum-interval guarantee across concurrent callers.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New creates a lookup client.
func New(cfg Config, logger *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		logger:  logger,
	}
}

// Search queries both distributors for the given term and component kind.
// It always returns a result for each distributor: live data when the
// lookup succeeds, the fixed fallback dataset otherwise. It never returns
// an error; degradation is logged and tagged on the components.
func (c *Client) Search(ctx context.Context, term string, kind types.ComponentKind) map[string][]types.WebComponent {
	results := make(map[string][]types.WebComponent, 2)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, distributor := range []string{types.DistributorMouser, types.DistributorDigikey} {
		g.Go(func() error {
			components := c.searchOne(gctx, distributor, term, kind)
			mu.Lock()
			results[distributor] = components
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	return results
}

// searchOne runs the full pipeline for a single distributor: rate-limited
// fetch with retry, extraction cascade, fallback substitution.
func (c *Client) searchOne(ctx context.Context, distributor, term string, kind types.ComponentKind) []types.WebComponent {
	searchURL := c.searchURL(distributor, term, kind)

	body, err := c.fetch(ctx, searchURL)
	if err != nil {
		c.logger.Warn("distributor lookup failed, using fallback data",
			zap.String("distributor", distributor), zap.String("url", searchURL), zap.Error(err))
		return FallbackComponents(distributor, kind)
	}

	if c.cfg.UseBrowser && tooShortForExtraction(body) {
		if rendered, berr := fetchRendered(ctx, searchURL, c.cfg.BrowserTimeout); berr == nil {
			body = rendered
		} else {
			c.logger.Debug("browser render failed, continuing with plain body",
				zap.String("url", searchURL), zap.Error(berr))
		}
	}

	components := extractComponents(body, distributor, kind)
	if len(components) == 0 {
		c.logger.Warn("no components extracted, using fallback data",
			zap.String("distributor", distributor), zap.String("url", searchURL))
		return FallbackComponents(distributor, kind)
	}

	if len(components) > maxExtracted {
		components = components[:maxExtracted]
	}
	c.logger.Info("distributor lookup succeeded",
		zap.String("distributor", distributor), zap.Int("count", len(components)))
	return components
}

func (c *Client) searchURL(distributor, term string, kind types.ComponentKind) string {
	switch distributor {
	case types.DistributorDigikey:
		return c.cfg.DigikeyBaseURL + digikeyCategories[kind]
	default:
		return fmt.Sprintf("%s%s?q=%s", c.cfg.MouserBaseURL, mouserCategories[kind], url.QueryEscape(term))
	}
}

// fetch GETs a URL under the shared rate limiter with the configured retry
// policy. 429 responses back off on the growing schedule; transport errors
// and other non-2xx statuses retry after the fixed delay.
func (c *Client) fetch(ctx context.Context, rawURL string) (string, error) {
	var body string

	err := withRetry(ctx, c.cfg.Policy, func() (attemptOutcome, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return outcomeTransient, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return outcomeTransient, &RequestError{URL: rawURL, Message: "failed to create request", Cause: err}
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		resp, err := c.http.Do(req)
		if err != nil {
			return outcomeTransient, &RequestError{URL: rawURL, Message: "HTTP request failed", Cause: err}
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusTooManyRequests {
			return outcomeRateLimited, &RateLimitedError{URL: rawURL, Attempts: c.cfg.Policy.normalized().MaxAttempts}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return outcomeTransient, &RequestError{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return outcomeTransient, &RequestError{URL: rawURL, Message: "failed to read response body", Cause: err}
		}
		body = string(data)
		return outcomeOK, nil
	})
	if err != nil {
		return "", err
	}
	return body, nil
}
