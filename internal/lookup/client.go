package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encoding/json"

	"github.com/ozgarage/workshop-tracker/internal/common"
)

// Config for the lookup client.
type Config struct {
	BaseURL string        // e.g. https://api.regocheck.example.com
	APIKey  string        // sent as x-api-key
	Timeout time.Duration // http client timeout
}

// Client issues single-shot registration lookups against the remote source.
// One HTTP GET per call, no retries; rate limiting and timeouts are outcomes,
// not faults, and the human controls retry timing.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Lookup performs one GET {base}/lookup?plate=&state= and classifies the raw
// response. The returned error is non-nil only for blank caller input (before
// any network call) and for caller-initiated cancellation; every remote
// condition is expressed through the Outcome.
func (c *Client) Lookup(ctx context.Context, plate, state string) (Outcome, error) {
	if strings.TrimSpace(plate) == "" {
		return Outcome{}, common.InvalidArgumentError("plate is required")
	}
	if strings.TrimSpace(state) == "" {
		return Outcome{}, common.InvalidArgumentError("state is required")
	}

	endpoint := fmt.Sprintf("%s/lookup?plate=%s&state=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		url.QueryEscape(plate),
		url.QueryEscape(state),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Outcome{Status: StatusTransportError, Detail: err.Error()}, nil
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A cancelled wait is the caller's doing and propagates as such; only
		// an elapsed deadline counts as a timeout outcome.
		if ctx.Err() == context.Canceled {
			return Outcome{}, ctx.Err()
		}
		if isTimeout(err) {
			c.log.Error("lookup.http.timeout",
				"plate", plate, "state", state, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return Outcome{Status: StatusTimeout, Detail: err.Error()}, nil
		}
		c.log.Error("lookup.http.error",
			"plate", plate, "state", state, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Outcome{Status: StatusTransportError, Detail: err.Error()}, nil
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("lookup response body close error", "error", err)
		}
	}(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.log.Warn("lookup.not_found", "plate", plate, "state", state)
		return Outcome{Status: StatusNotFound}, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		c.log.Warn("lookup.rate_limited", "plate", plate, "state", state)
		return Outcome{Status: StatusRateLimited}, nil
	case resp.StatusCode != http.StatusOK:
		// Only 200 carries a payload; any other status, 2xx included, is not
		// part of the source's protocol.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		detail := fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		c.log.Error("lookup.http.status",
			"plate", plate, "state", state, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Outcome{Status: StatusTransportError, Detail: detail}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("lookup.read_error", "plate", plate, "state", state, "error", err)
		return Outcome{Status: StatusTransportError, Detail: err.Error()}, nil
	}

	if err := ValidateJSONAgainstSchema(BuildPayloadJSONSchema(), raw); err != nil {
		c.log.Error("lookup.schema_validation_failed",
			"plate", plate, "state", state, "error", err, "raw_bytes", len(raw),
		)
		return Outcome{Status: StatusTransportError, Detail: fmt.Sprintf("malformed body: %v", err)}, nil
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.log.Error("lookup.decode_error", "plate", plate, "state", state, "error", err)
		return Outcome{Status: StatusTransportError, Detail: fmt.Sprintf("decode body: %v", err)}, nil
	}

	c.log.Info("lookup.http.ok",
		"plate", plate, "state", state,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Outcome{Status: StatusFound, Payload: &payload}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}
