package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the notes backend under a base URL such as
// http://localhost:5000/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	log        zerolog.Logger
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// SetHTTPClient swaps the transport, mainly for tests.
func (c *Client) SetHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// SetToken makes every request carry Authorization: Bearer token.
// An empty token sends no header.
func (c *Client) SetToken(token string) *Client {
	c.token = token
	return c
}

// BaseURL is the backend root every path is joined to.
func (c *Client) BaseURL() string { return c.baseURL }

type errorBody struct {
	Error string `json:"error"`
}

// do sends the request and returns the body when the status is one of want,
// or any 2xx when want is empty.
func (c *Client) do(ctx context.Context, method, path string, body any, want ...int) ([]byte, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Str("request_id", reqID).Err(err).Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request")

	if accepted(resp.StatusCode, want) {
		return respBytes, nil
	}
	apiErr := &Error{Method: method, Path: path, StatusCode: resp.StatusCode}
	var eb errorBody
	if json.Unmarshal(respBytes, &eb) == nil {
		apiErr.Message = eb.Error
	}
	return nil, apiErr
}

func accepted(code int, want []int) bool {
	if len(want) == 0 {
		return code/100 == 2
	}
	for _, w := range want {
		if code == w {
			return true
		}
	}
	return false
}

// Health succeeds when the backend answers GET /health with any 2xx.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

