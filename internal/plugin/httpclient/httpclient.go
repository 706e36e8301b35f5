// Package httpclient is the HTTP plugin: it lets the frontend issue requests
// from the native side, outside any webview origin restrictions.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "http"

const (
	DefaultTimeout = 30 * time.Second
	MaxBodySize    = 10 << 20
	// MaxInFlight bounds concurrent fetches; extra calls wait for a slot.
	MaxInFlight = 8
)

var (
	ErrScheme   = errors.New("only http and https URLs are allowed")
	ErrTooLarge = errors.New("response body exceeds limit")
)

// Request is the argument of the fetch command.
type Request struct {
	URL     string            `json:"url"`
	Method  string            `json:"method,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

// Response is the result of the fetch command.
type Response struct {
	Status     int               `json:"status"`
	StatusText string            `json:"status_text"`
	URL        string            `json:"url"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Plugin implements plugin.Plugin.
type Plugin struct {
	client *http.Client
	slots  *semaphore.Weighted
}

// New returns the HTTP plugin. A nil client gets a default one with
// DefaultTimeout.
func New(client *http.Client) *Plugin {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Plugin{client: client, slots: semaphore.NewWeighted(MaxInFlight)}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	return ctx.Register(Name, "fetch", p.fetch)
}

func (p *Plugin) fetch(ctx context.Context, args json.RawMessage) (any, error) {
	var in Request
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}

	target, err := url.Parse(in.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", command.ErrInvalidArgs, err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", ErrScheme, in.URL)
	}

	method := strings.ToUpper(in.Method)
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if in.Body != "" {
		body = strings.NewReader(in.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range in.Headers {
		req.Header.Set(k, v)
	}

	if err := p.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.slots.Release(1)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, target.Redacted(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(data) > MaxBodySize {
		return nil, ErrTooLarge
	}

	headers := make(map[string]string, len(resp.Header))
	for k, v := range resp.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ", ")
	}

	return Response{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		URL:        resp.Request.URL.String(),
		Headers:    headers,
		Body:       string(data),
	}, nil
}
