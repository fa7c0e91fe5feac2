// Package nlcep is a client for the natural-language calendar event parser
// exposed by the calendar backend at /api/ui_utils/nlcep.
package nlcep

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ionut-t/calkeys/core"
	"github.com/tidwall/gjson"
)

// EndpointPath is the path of the parser relative to the backend root.
const EndpointPath = "/api/ui_utils/nlcep"

// SessionCookieName is the cookie the backend reads the user session from.
const SessionCookieName = "session_id"

// maxBodySize caps how much of a response is read.
const maxBodySize = 64 << 10

type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	session    string
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithSession sends the given session id with every request.
func WithSession(session string) Option {
	return func(client *Client) {
		client.session = session
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	c := &Client{
		endpoint:   base.JoinPath(EndpointPath),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Interpret asks the backend to parse text. A response with a non-2xx status
// is returned as a *core.RejectionError carrying the response body.
func (c *Client) Interpret(ctx context.Context, text string) (core.Interpretation, error) {
	u := *c.endpoint
	u.RawQuery = url.Values{"nl": {text}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return core.Interpretation{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: c.session})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return core.Interpretation{}, fmt.Errorf("request %s: %w", EndpointPath, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return core.Interpretation{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return core.Interpretation{}, &core.RejectionError{
			Status: resp.StatusCode,
			Hint:   rejectionHint(body),
		}
	}

	return decode(body)
}

func decode(body []byte) (core.Interpretation, error) {
	if !gjson.ValidBytes(body) {
		return core.Interpretation{}, fmt.Errorf("malformed response: %q", truncate(string(body), 80))
	}

	result := gjson.ParseBytes(body)
	if !result.IsObject() {
		return core.Interpretation{}, fmt.Errorf("malformed response: expected an object, got %s", result.Type)
	}

	summary := result.Get("summary")
	if !summary.Exists() {
		return core.Interpretation{}, fmt.Errorf("malformed response: missing summary")
	}

	return core.Interpretation{
		Summary:  summary.String(),
		Date:     field(result, "date"),
		Time:     field(result, "time"),
		Location: field(result, "location"),
		Duration: field(result, "duration"),
	}, nil
}

// field reads an optional value. null and missing fields read as "".
// Non-string values (a duration in minutes, say) keep their JSON text.
func field(result gjson.Result, path string) string {
	v := result.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

// rejectionHint extracts something readable from an error body. The backend
// answers with a JSON-encoded error, which may be a bare string.
func rejectionHint(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "no details"
	}

	if gjson.Valid(text) {
		parsed := gjson.Parse(text)
		switch {
		case parsed.Type == gjson.String:
			return parsed.String()
		case parsed.Get("message").Exists():
			return parsed.Get("message").String()
		case parsed.Get("error").Exists():
			return parsed.Get("error").String()
		}
	}

	return truncate(text, 200)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
