package xmlsoccer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
)

func TestFastHTTPTransport_SendsGetWithHeaders(t *testing.T) {
	t.Parallel()

	var (
		mu                            sync.Mutex
		gotPath, gotKey, gotRequestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("apikey")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<XMLSOCCER.COM><League><Id>1</Id></League></XMLSOCCER.COM>`))
	}))
	defer srv.Close()

	transport := NewFastHTTPTransport(TransportConfig{Timeout: 5 * time.Second, Logger: logging.NewNop()})
	resp, err := transport.Send(context.Background(), Request{
		Method:      "GetAllLeagues",
		Endpoint:    srv.URL + "/GetAllLeagues",
		Query:       url.Values{"apikey": []string{"k"}},
		Fingerprint: "xmlsoccer:getallleagues:abc",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	mu.Lock()
	defer mu.Unlock()
	if gotPath != "/GetAllLeagues" || gotKey != "k" || gotRequestID != "xmlsoccer:getallleagues:abc" {
		t.Fatalf("unexpected request path=%s key=%s id=%s", gotPath, gotKey, gotRequestID)
	}
	if string(resp.Body) == "" {
		t.Fatalf("expected body to be copied")
	}
}

func TestFastHTTPTransport_ReturnsNon200AsResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	transport := NewFastHTTPTransport(TransportConfig{Logger: logging.NewNop()})
	resp, err := transport.Send(context.Background(), Request{Endpoint: srv.URL + "/ImAlive"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestFastHTTPTransport_HonoursCancelledContext(t *testing.T) {
	t.Parallel()

	transport := NewFastHTTPTransport(TransportConfig{Logger: logging.NewNop()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := transport.Send(ctx, Request{Endpoint: "http://127.0.0.1:1/ImAlive"}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestParseBindIP(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"":             false,
		"10.0.0.12":    true,
		"  ::1 ":       true,
		"eth0":         false,
		"300.1.1.1":    false,
		"10.0.0.12:80": false,
	}
	for raw, valid := range cases {
		if got := parseBindIP(raw) != nil; got != valid {
			t.Fatalf("parseBindIP(%q) valid=%v want %v", raw, got, valid)
		}
	}

	transport := NewFastHTTPTransport(TransportConfig{RequestIP: "not-an-ip", Logger: logging.NewNop()})
	if transport.BindIP() != nil {
		t.Fatalf("expected invalid request ip to be ignored")
	}
	transport = NewFastHTTPTransport(TransportConfig{RequestIP: "127.0.0.1", Logger: logging.NewNop()})
	if transport.BindIP().String() != "127.0.0.1" {
		t.Fatalf("expected bind ip to be kept, got %v", transport.BindIP())
	}
}
