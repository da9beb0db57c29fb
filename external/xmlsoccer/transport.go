package xmlsoccer

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
	"github.com/valyala/fasthttp"
)

// RequestTimeout bounds connect, write and read of a single call.
const RequestTimeout = 30 * time.Second

const maxResponseBodySize = 32 << 20

// Request is one outgoing call. Query carries the api key.
type Request struct {
	Method      string
	Endpoint    string
	Query       url.Values
	Fingerprint string
}

func (r Request) URL() string {
	if encoded := r.Query.Encode(); encoded != "" {
		return r.Endpoint + "?" + encoded
	}
	return r.Endpoint
}

type TransportResponse struct {
	StatusCode int
	Body       []byte
}

// Transport sends a request and returns the raw response. A non-nil error
// means no response was received.
type Transport interface {
	Send(ctx context.Context, req Request) (TransportResponse, error)
}

// FastHTTPTransport is the default Transport.
type FastHTTPTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
	bindIP  net.IP
}

type TransportConfig struct {
	// RequestIP is the local address outgoing connections bind to. Values
	// that are not IPv4 or IPv6 addresses are ignored.
	RequestIP string
	Timeout   time.Duration
	Logger    *logging.Logger
}

func NewFastHTTPTransport(cfg TransportConfig) *FastHTTPTransport {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = RequestTimeout
	}

	dialer := &fasthttp.TCPDialer{}
	bindIP := parseBindIP(cfg.RequestIP)
	if bindIP != nil {
		dialer.LocalAddr = &net.TCPAddr{IP: bindIP}
	} else if strings.TrimSpace(cfg.RequestIP) != "" {
		logger.Warn("ignoring invalid xmlsoccer request ip", "request_ip", cfg.RequestIP)
	}

	client := &fasthttp.Client{
		Name:                "xmlsoccer-import",
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxResponseBodySize: maxResponseBodySize,
		Dial: func(addr string) (net.Conn, error) {
			return dialer.DialTimeout(addr, timeout)
		},
	}

	return &FastHTTPTransport{
		client:  client,
		timeout: timeout,
		bindIP:  bindIP,
	}
}

// BindIP is the validated local address, nil when unset.
func (t *FastHTTPTransport) BindIP() net.IP {
	return t.bindIP
}

func (t *FastHTTPTransport) Send(ctx context.Context, r Request) (TransportResponse, error) {
	if err := ctx.Err(); err != nil {
		return TransportResponse{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.URL())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/xml, text/xml")
	if r.Fingerprint != "" {
		req.Header.Set("X-Request-Id", r.Fingerprint)
	}

	timeout := t.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return TransportResponse{}, context.DeadlineExceeded
	}

	if err := t.client.DoTimeout(req, resp, timeout); err != nil {
		return TransportResponse{}, err
	}

	return TransportResponse{
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), resp.Body()...),
	}, nil
}

func parseBindIP(raw string) net.IP {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	return net.ParseIP(value)
}
