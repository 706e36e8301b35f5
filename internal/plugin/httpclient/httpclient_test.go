package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/plugin"
)

func setup(t *testing.T) *command.Registry {
	t.Helper()
	commands := command.NewRegistry()
	ctx := &plugin.Context{App: test.NewApp(), Commands: commands}
	if err := plugin.NewRegistry().Install(ctx, New(nil)); err != nil {
		t.Fatalf("Install: %v", err)
	}
	return commands
}

func fetch(t *testing.T, r *command.Registry, req Request) (Response, error) {
	t.Helper()
	raw, _ := json.Marshal(req)
	out, err := r.Invoke(context.Background(), plugin.CommandName(Name, "fetch"), raw)
	if err != nil {
		return Response{}, err
	}
	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp, nil
}

func TestFetchGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("X-Squri", "yes")
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "short and stout")
	}))
	defer srv.Close()

	resp, err := fetch(t, setup(t), Request{URL: srv.URL})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if resp.Status != http.StatusTeapot || resp.StatusText != "I'm a teapot" {
		t.Errorf("unexpected status %d %q", resp.Status, resp.StatusText)
	}
	if resp.Body != "short and stout" {
		t.Errorf("unexpected body %q", resp.Body)
	}
	if resp.Headers["x-squri"] != "yes" {
		t.Errorf("expected lower-cased header, got %v", resp.Headers)
	}
}

func TestFetchPostWithHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing content type, got %q", r.Header.Get("Content-Type"))
		}
		w.Write(body)
	}))
	defer srv.Close()

	resp, err := fetch(t, setup(t), Request{
		URL:     srv.URL,
		Method:  "post",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    `{"hello":"world"}`,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if resp.Body != `{"hello":"world"}` {
		t.Errorf("expected echoed body, got %q", resp.Body)
	}
}

func TestFetchRejectsScheme(t *testing.T) {
	r := setup(t)
	for _, u := range []string{"file:///etc/passwd", "ftp://example.com", "example.com"} {
		if _, err := fetch(t, r, Request{URL: u}); !errors.Is(err, ErrScheme) {
			t.Errorf("%s: expected ErrScheme, got %v", u, err)
		}
	}
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := fetch(t, setup(t), Request{URL: url}); err == nil {
		t.Error("expected connection error")
	}
}

func TestFetchWaitsForSlot(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
	}))
	defer srv.Close()

	p := New(nil)
	if err := p.slots.Acquire(context.Background(), MaxInFlight); err != nil {
		t.Fatal(err)
	}
	defer p.slots.Release(MaxInFlight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	raw, _ := json.Marshal(Request{URL: srv.URL})
	if _, err := p.fetch(ctx, raw); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled while all slots are taken, got %v", err)
	}
	if hits != 0 {
		t.Error("request should not reach the server")
	}
}
