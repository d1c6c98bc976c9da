package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultTimeout = 10 * time.Second

	maxJSONBody  = 4 << 20
	maxBlobBody  = 8 << 20
	defaultAgent = "critter-collector/1.0"
)

// Client wraps *http.Client with the helpers the upstream adapters share.
// It is safe for concurrent use and is owned by the process entry point.
type Client struct {
	HTTP      *http.Client
	BaseURL   string // optional; when set, relative paths are resolved against it
	UserAgent string
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
		UserAgent: defaultAgent,
	}
}

func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	_, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// NewWithTransport lets tests inject a RoundTripper.
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
		UserAgent: defaultAgent,
	}
}

// HTTPError is a non-2xx upstream response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON performs a JSON request.
// - pathOrURL: absolute URL, or a path when BaseURL is set
// - query: appended to the URL (optional)
// - in: request body (optional, nil => no body)
// - out: JSON decode target (optional, nil => body ignored)
// Returns *HTTPError when the status is not 2xx.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	query url.Values,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL, query)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAgent(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := readAtMost(resp.Body, maxJSONBody)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}

	return nil
}

// Blob is a raw response body together with its declared media type.
type Blob struct {
	ContentType string
	Data        []byte
}

// GetBlob downloads a binary resource (images).
func (c *Client) GetBlob(ctx context.Context, rawURL string) (Blob, error) {
	if c == nil || c.HTTP == nil {
		return Blob{}, errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(rawURL, nil)
	if err != nil {
		return Blob{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return Blob{}, fmt.Errorf("httpclient: new request: %w", err)
	}
	c.setAgent(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Blob{}, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Blob{}, &HTTPError{StatusCode: resp.StatusCode}
	}

	data, err := readAtMost(resp.Body, maxBlobBody)
	if err != nil {
		return Blob{}, fmt.Errorf("httpclient: read body: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return Blob{ContentType: ct, Data: data}, nil
}

func (c *Client) setAgent(req *http.Request) {
	if ua := strings.TrimSpace(c.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	}
}

func (c *Client) resolveURL(pathOrURL string, query url.Values) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	full := pathOrURL
	if !strings.HasPrefix(pathOrURL, "http://") && !strings.HasPrefix(pathOrURL, "https://") {
		if strings.TrimSpace(c.BaseURL) == "" {
			return "", errors.New("httpclient: relative path requires BaseURL")
		}
		if !strings.HasPrefix(pathOrURL, "/") {
			pathOrURL = "/" + pathOrURL
		}
		full = c.BaseURL + pathOrURL
	}

	if len(query) == 0 {
		return full, nil
	}
	sep := "?"
	if strings.Contains(full, "?") {
		sep = "&"
	}
	return full + sep + query.Encode(), nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
