package export

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/resilience"
)

type ClientConfig struct {
	URL            string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client ships archived seasons to an external backup endpoint. The breaker
// keeps a dead endpoint from stalling season completion.
type Client struct {
	http           *fasthttp.Client
	url            string
	token          string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		http:           &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		url:            strings.TrimSpace(cfg.URL),
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// PushSeason posts one archived season as JSON.
func (c *Client) PushSeason(ctx context.Context, archived season.Season) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return crerr.Wrap(err, "archive export")
		}
	}

	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)
	if err := sonic.ConfigDefault.NewEncoder(body).Encode(archived); err != nil {
		return crerr.Wrap(err, "encode archived season")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.SetBody(body.B)

	err := c.http.DoTimeout(req, resp, c.timeout)
	if err != nil {
		c.report(false)
		return crerr.Wrapf(err, "post archived season %s", archived.ID)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		c.report(false)
		return crerr.Newf("archive endpoint returned status %d for season %s", status, archived.ID)
	}

	c.report(true)
	c.logger.InfoContext(ctx, "archived season exported", "season_id", archived.ID, "status", status)
	return nil
}

func (c *Client) report(success bool) {
	if c.circuitEnabled {
		c.breaker.Report(success)
	}
}
