package nmt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
	"github.com/dfki-mlt/transins-go/internal/platform/config"
	"github.com/dfki-mlt/transins-go/internal/platform/observability"
)

const (
	circuitBreakerThreshold = 5
	circuitBreakerTimeout   = 1 * time.Minute
)

// httpClient is the production Client: a rate-limited, circuit-breaker
// guarded, retrying HTTP caller to the external NMT engine's align
// endpoint. Pattern lifted from the teacher's LLM provider transport.
type httpClient struct {
	endpoint    string
	timeout     time.Duration
	maxRetries  uint64
	retryBase   time.Duration
	namespace   uuid.UUID
	http        *http.Client
	logger      *zerolog.Logger
	rateLimiter *rate.Limiter

	mu                  sync.Mutex
	consecutiveFailures int
	circuitOpenUntil    time.Time
}

// NewHTTPClient builds a Client against cfg.NMTEndpoint. Callers should
// check cfg.NMTEndpoint != "" first and fall back to MockClient or
// ErrClientDisabled otherwise — NewHTTPClient itself does not validate it.
func NewHTTPClient(cfg *config.Config, logger *zerolog.Logger) Client {
	return &httpClient{
		endpoint:    cfg.NMTEndpoint,
		timeout:     cfg.NMTTimeout,
		maxRetries:  cfg.NMTMaxRetries,
		retryBase:   cfg.NMTRetryBase,
		namespace:   cfg.RequestIDNamespace,
		http:        &http.Client{Timeout: cfg.NMTTimeout},
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.NMTRateLimitRPS), 1),
	}
}

func (c *httpClient) checkCircuit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Now().Before(c.circuitOpenUntil) {
		return fmt.Errorf("%w until %v", coreerrors.ErrCircuitBreakerOpen, c.circuitOpenUntil)
	}

	return nil
}

func (c *httpClient) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures = 0
	observability.NMTCircuitBreakerState.Set(0)
}

func (c *httpClient) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures++
	if c.consecutiveFailures >= circuitBreakerThreshold {
		c.circuitOpenUntil = time.Now().Add(circuitBreakerTimeout)
		observability.NMTCircuitBreakerState.Set(1)
		c.logger.Warn().
			Int("consecutive_failures", c.consecutiveFailures).
			Time("open_until", c.circuitOpenUntil).
			Msg("nmt circuit breaker opened")
	}
}

func (c *httpClient) Align(ctx context.Context, req AlignRequest) (AlignResponse, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewSHA1(c.namespace, []byte(fmt.Sprintf("%v", req.SourceTokens))).String()
	}

	if err := c.checkCircuit(); err != nil {
		return AlignResponse{}, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return AlignResponse{}, fmt.Errorf("waiting for nmt rate limiter: %w", err)
	}

	start := time.Now()

	resp, err := c.doWithRetry(ctx, req)

	status := "ok"
	if err != nil {
		status = "error"
		c.recordFailure()
	} else {
		c.recordSuccess()
	}

	observability.NMTRequestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	return resp, err
}

func (c *httpClient) doWithRetry(ctx context.Context, req AlignRequest) (AlignResponse, error) {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))

	var resp AlignResponse

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := c.doOnce(ctx, req)
		if err != nil {
			if isRetryable(err) {
				return retry.RetryableError(err)
			}

			return err
		}

		resp = r

		return nil
	})
	if err != nil {
		return AlignResponse{}, fmt.Errorf("nmt align request: %w", err)
	}

	return resp, nil
}

func (c *httpClient) doOnce(ctx context.Context, req AlignRequest) (AlignResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return AlignResponse{}, fmt.Errorf("marshal align request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/align", bytes.NewReader(body))
	if err != nil {
		return AlignResponse{}, fmt.Errorf("build align request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", req.RequestID)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return AlignResponse{}, fmt.Errorf("nmt request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return AlignResponse{}, fmt.Errorf("read align response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("status %d: %w", httpResp.StatusCode, coreerrors.ErrUnexpectedStatusCode)
		if httpResp.StatusCode >= http.StatusInternalServerError {
			return AlignResponse{}, retry.RetryableError(statusErr) // server-side failure: attempt again
		}

		return AlignResponse{}, statusErr
	}

	var out AlignResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return AlignResponse{}, fmt.Errorf("unmarshal align response: %w", err)
	}

	return out, nil
}

func (c *httpClient) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("nmt ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping status %d: %w", resp.StatusCode, coreerrors.ErrUnexpectedStatusCode)
	}

	return nil
}

// isRetryable reports whether a transport-level failure is worth another
// attempt. A non-2xx status wrapped in ErrUnexpectedStatusCode is not marked
// retryable here: doOnce itself marks a 5xx status as retryable, and a 4xx
// status is returned without another attempt. Every other error doOnce
// returns (network-level failures included) is retryable.
func isRetryable(err error) bool {
	return !coreerrors.Is(err, coreerrors.ErrUnexpectedStatusCode)
}
