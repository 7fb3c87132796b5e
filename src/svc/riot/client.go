package riot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultHostFormat       = "https://%s.api.riotgames.com"
	defaultTimeout          = 10 * time.Second
	defaultRetryAttempts    = 3
	defaultRetryDelay       = time.Second
	defaultRequestsPerSec   = 15
	defaultRequestsPer2Min  = 90
	defaultFetchConcurrency = 10
	defaultPlatform         = "na1"
	matchIDPageSize         = 100
)

type Client struct {
	apiKey      string
	httpClient  *http.Client
	hostFormat  string
	regions     []string
	platform    string
	attempts    int
	delay       time.Duration
	concurrency int
	perSecond   int
	perTwoMin   int
	limiter     *limiter
	cache       *matchCache
	metrics     instance.Prometheus
}

type Option func(*Client)

// WithHostFormat replaces the upstream host pattern; the %s receives the region or platform.
func WithHostFormat(format string) Option {
	return func(c *Client) {
		c.hostFormat = format
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		if delay >= 0 {
			c.delay = delay
		}
	}
}

// WithRateLimit sets the per second and per two minute budgets. Zero disables a window.
func WithRateLimit(perSecond, perTwoMinutes int) Option {
	return func(c *Client) {
		c.perSecond = perSecond
		c.perTwoMin = perTwoMinutes
	}
}

func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func WithRegions(regions []string) Option {
	return func(c *Client) {
		if len(regions) != 0 {
			c.regions = regions
		}
	}
}

func WithDefaultPlatform(platform string) Option {
	return func(c *Client) {
		if platform != "" {
			c.platform = platform
		}
	}
}

// WithCache stores fetched match details in redis for ttl. A nil redis leaves caching off.
func WithCache(redis instance.Redis, ttl time.Duration) Option {
	return func(c *Client) {
		if redis != nil {
			c.cache = &matchCache{redis: redis, ttl: ttl}
		}
	}
}

func WithMetrics(metrics instance.Prometheus) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		hostFormat:  defaultHostFormat,
		regions:     DefaultRegions,
		platform:    defaultPlatform,
		attempts:    defaultRetryAttempts,
		delay:       defaultRetryDelay,
		concurrency: defaultFetchConcurrency,
		perSecond:   defaultRequestsPerSec,
		perTwoMin:   defaultRequestsPer2Min,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.limiter = newLimiter(
		&window{limit: c.perSecond, period: time.Second},
		&window{limit: c.perTwoMin, period: 2 * time.Minute},
	)

	return c
}

var _ instance.Riot = (*Client)(nil)

func (c *Client) DefaultPlatform() string {
	return c.platform
}

func (c *Client) url(host string, path string) string {
	return fmt.Sprintf(c.hostFormat, host) + path
}

// get performs a GET with bounded retries. Not-found and forbidden responses return at once;
// everything else is retried after a fixed delay until the attempts run out.
func (c *Client) get(ctx context.Context, endpoint string, host string, path string, out interface{}) error {
	url := c.url(host, path)

	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.delay):
			}
		}

		err = c.do(ctx, endpoint, url, out)
		if err == nil || IsPermanent(err) || ctx.Err() != nil {
			return err
		}

		fields := logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt,
		}
		apiErr := &APIError{}
		if errors.As(err, &apiErr) {
			fields["status"] = apiErr.StatusCode
		}
		logrus.WithError(err).WithFields(fields).Warn("riot request failed")
	}

	return err
}

func (c *Client) do(ctx context.Context, endpoint string, url string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, 0, start)
		return err
	}
	defer resp.Body.Close()

	c.observe(endpoint, resp.StatusCode, start)

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, URL: url}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) observe(endpoint string, status int, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveRiotRequest(endpoint, status, time.Since(start))
	}
}
