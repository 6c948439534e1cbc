package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/csheth/numeral/internal/logging"
)

const (
	defaultEndpoint   = "http://localhost:8080/romannumeral"
	defaultQueryParam = "query"
	defaultTimeout    = 10 * time.Second
	maxBodyBytes      = 64 << 10
)

// Client converts a validated integer into its numeral text.
type Client interface {
	Convert(ctx context.Context, n int) (string, error)
}

// Config describes where the conversion service lives.
type Config struct {
	Endpoint   string
	QueryParam string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// HTTPClient calls the conversion service with a GET request.
type HTTPClient struct {
	endpoint   string
	queryParam string
	client     *http.Client
	log        logging.Logger
}

// New builds an HTTPClient. Zero fields of cfg fall back to the defaults and
// a nil logger discards events.
func New(cfg Config, logger logging.Logger) *HTTPClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	param := cfg.QueryParam
	if param == "" {
		param = defaultQueryParam
	}
	return &HTTPClient{
		endpoint:   endpoint,
		queryParam: param,
		client:     pickHTTPClient(cfg.HTTPClient, cfg.Timeout),
		log:        logging.Guard(logger),
	}
}

func pickHTTPClient(custom *http.Client, timeout time.Duration) *http.Client {
	if custom != nil {
		return custom
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

type response struct {
	Output *string `json:"output"`
}

// Convert requests the numeral for n. The caller guarantees n is in range.
// Every failure is a *Error whose UserMessage is safe to display.
func (c *HTTPClient) Convert(ctx context.Context, n int) (string, error) {
	output, convErr := c.fetch(ctx, n)
	if convErr != nil {
		c.log.Error(convErr, "conversion failed", map[string]any{
			"input":  n,
			"url":    convErr.URL,
			"kind":   convErr.Kind.String(),
			"status": convErr.Status,
		})
		return "", convErr
	}
	c.log.Info("conversion succeeded", map[string]any{"input": n, "output": output})
	return output, nil
}

func (c *HTTPClient) fetch(ctx context.Context, n int) (string, *Error) {
	target, err := c.requestURL(n)
	if err != nil {
		return "", &Error{Kind: KindUnreachable, URL: c.endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &Error{Kind: KindUnreachable, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &Error{Kind: KindUnreachable, URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode/100 != 2 {
		return "", &Error{
			Kind:   KindBadStatus,
			URL:    target,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("conversion API error: %s (%s)", resp.Status, string(body)),
		}
	}
	if err != nil {
		return "", &Error{Kind: KindUnreachable, URL: target, Status: resp.StatusCode, Err: err}
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &Error{Kind: KindMalformedResponse, URL: target, Status: resp.StatusCode, Err: err}
	}
	if parsed.Output == nil {
		return "", &Error{
			Kind:   KindMalformedResponse,
			URL:    target,
			Status: resp.StatusCode,
			Err:    errors.New(`response has no "output" field`),
		}
	}
	return *parsed.Output, nil
}

func (c *HTTPClient) requestURL(n int) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set(c.queryParam, strconv.Itoa(n))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
