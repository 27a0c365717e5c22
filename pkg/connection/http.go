// Package connection sends requests to the Notion REST API.
package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/notion-sdk/notion-go/internal/codec"
	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/rs/zerolog"
)

type HTTPConnection struct {
	BaseURL     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler

	token      string
	version    string
	pageSize   int
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *Metrics
}

func New(c *Config) (*HTTPConnection, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	con := HTTPConnection{
		BaseURL:     strings.TrimRight(c.BaseURL, "/"),
		Marshaler:   c.Marshaler,
		Unmarshaler: c.Unmarshaler,
		token:       c.Token,
		version:     c.Version,
		pageSize:    c.PageSize,
		logger:      c.Logger,
		metrics:     NewMetrics(c.Registerer),
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	con.httpClient = &http.Client{
		Timeout: timeout,
	}
	if con.pageSize <= 0 {
		con.pageSize = constants.DefaultPageSize
	}

	return &con, nil
}

func (h *HTTPConnection) SetTimeout(timeout time.Duration) *HTTPConnection {
	h.httpClient.Timeout = timeout
	return h
}

func (h *HTTPConnection) SetHTTPClient(client *http.Client) *HTTPConnection {
	h.httpClient = client
	return h
}

func (h *HTTPConnection) GetUnmarshaler() codec.Unmarshaler {
	return h.Unmarshaler
}

// Send performs one API call and returns the raw response body. The
// operation names the call in logs and metrics; body is encoded with the
// Marshaler unless it is nil.
func (h *HTTPConnection) Send(ctx context.Context, operation, method, path string, query url.Values, body any) ([]byte, error) {
	if h.BaseURL == "" {
		return nil, constants.ErrNoBaseURL
	}

	endpoint := h.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	reqBody := io.Reader(http.NoBody)
	if body != nil {
		data, err := h.Marshaler.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.token))
	req.Header.Set("Notion-Version", h.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	respData, status, err := h.MakeRequest(req)
	elapsed := time.Since(start)

	h.metrics.RequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	statusLabel := "error"
	if status != 0 {
		statusLabel = strconv.Itoa(status)
	}
	h.metrics.RequestsTotal.WithLabelValues(operation, statusLabel).Inc()

	if err != nil {
		h.logger.Warn().Err(err).
			Str("operation", operation).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("notion request failed")
		return nil, err
	}

	h.logger.Debug().
		Str("operation", operation).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("notion request")
	return respData, nil
}

// MakeRequest sends req and returns the body and status code. Non-2xx
// responses become an *APIError.
func (h *HTTPConnection) MakeRequest(req *http.Request) ([]byte, int, error) {
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error making HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBytes, resp.StatusCode, nil
	}

	return nil, resp.StatusCode, parseAPIError(resp.StatusCode, respBytes)
}

// Object sends a request answered by a single object and decodes it.
func (h *HTTPConnection) Object(ctx context.Context, operation, method, path string, body any) (map[string]any, error) {
	data, err := h.Send(ctx, operation, method, path, nil, body)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := h.Unmarshaler.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrMalformedInput, err)
	}
	return m, nil
}

type listPage struct {
	Results []map[string]any `json:"results"`
}

// List follows next_cursor until has_more is false and returns every result.
// Requests that carry a body (appending children) are not paginated.
func (h *HTTPConnection) List(ctx context.Context, operation, method, path string, body any) ([]map[string]any, error) {
	var (
		results []map[string]any
		cursor  string
	)

	for {
		query := url.Values{}
		if body == nil {
			query.Set("page_size", strconv.Itoa(h.pageSize))
			if cursor != "" {
				query.Set("start_cursor", cursor)
			}
		}

		data, err := h.Send(ctx, operation, method, path, query, body)
		if err != nil {
			return nil, err
		}

		var page listPage
		if err := h.Unmarshaler.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("%w: %v", constants.ErrMalformedInput, err)
		}
		results = append(results, page.Results...)

		if body != nil {
			return results, nil
		}

		hasMore, err := jsonparser.GetBoolean(data, "has_more")
		if err != nil || !hasMore {
			return results, nil
		}
		if cursor, err = jsonparser.GetString(data, "next_cursor"); err != nil || cursor == "" {
			return nil, fmt.Errorf("%w: has_more without next_cursor", constants.ErrMalformedInput)
		}
	}
}
