package xmlsoccer

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultServiceURL = "http://www.xmlsoccer.com/FootballData.asmx"

	apiKeyParam     = "apikey"
	redactedValue   = "REDACTED"
	misuseMarker    = "To avoid misuse of the service"
	spamListedReply = "Yes"
	spamCheckMethod = "IsMyApiKeyPutOnSpammersList"
)

// DefaultInvalidKeyMarkers are matched case-insensitively against the
// response text to detect rejected credentials.
var DefaultInvalidKeyMarkers = []string{
	"invalid api key",
	"api key is not valid",
	"not a valid api key",
}

var clientTracer = otel.Tracer("xmlsoccer-import/external/xmlsoccer")

type ClientConfig struct {
	ServiceURL string
	APIKey     string
	// RequestIP binds outgoing connections of the default transport.
	RequestIP string
	// GenerateHash annotates successful responses with ContentHash and SourceURL.
	GenerateHash      bool
	Cache             Cache
	CacheKeyPrefix    string
	Transport         Transport
	InvalidKeyMarkers []string
	Logger            *logging.Logger
	Now               func() time.Time
}

// Client invokes XMLSoccer methods by name.
type Client struct {
	serviceURL        string
	apiKey            string
	generateHash      bool
	cache             Cache
	cacheKeyPrefix    string
	transport         Transport
	invalidKeyMarkers []string
	logger            *logging.Logger
	now               func() time.Time
}

// Response is a successful call result.
type Response struct {
	Method   string
	Request  RequestDescriptor
	Body     []byte
	Document *Node
	// ContentHash is empty unless hashing is enabled.
	ContentHash string
	SourceURL   string
	CachedAt    time.Time
	FromCache   bool
}

// Decode unmarshals the raw XML body into v.
func (r *Response) Decode(v any) error {
	if r == nil {
		return crerr.New("nil response")
	}
	if err := xml.Unmarshal(r.Body, v); err != nil {
		return crerr.Wrapf(err, "decode %s response", r.Method)
	}
	return nil
}

func NewClient(cfg ClientConfig) (*Client, error) {
	serviceURL := strings.TrimRight(strings.TrimSpace(cfg.ServiceURL), "/")
	if serviceURL == "" {
		return nil, crerr.Wrap(ErrInvalidConfig, "service url cannot be empty")
	}
	if _, err := url.ParseRequestURI(serviceURL); err != nil {
		return nil, crerr.Wrapf(ErrInvalidConfig, "service url %q: %v", serviceURL, err)
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, crerr.Wrap(ErrInvalidConfig, "api key cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	transport := cfg.Transport
	if transport == nil {
		transport = NewFastHTTPTransport(TransportConfig{RequestIP: cfg.RequestIP, Logger: logger})
	}

	markers := make([]string, 0, len(cfg.InvalidKeyMarkers))
	for _, marker := range cfg.InvalidKeyMarkers {
		if marker = strings.ToLower(strings.TrimSpace(marker)); marker != "" {
			markers = append(markers, marker)
		}
	}
	if len(markers) == 0 {
		markers = append(markers, DefaultInvalidKeyMarkers...)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		serviceURL:        serviceURL,
		apiKey:            apiKey,
		generateHash:      cfg.GenerateHash,
		cache:             cfg.Cache,
		cacheKeyPrefix:    cfg.CacheKeyPrefix,
		transport:         transport,
		invalidKeyMarkers: markers,
		logger:            logger,
		now:               now,
	}, nil
}

// Invoke calls method with positional args. Args are bound to the declared
// parameters in order and coerced to their declared types. A fresh cached
// response is returned without a network call. Rate limiting is reported as
// an error and never retried here.
func (c *Client) Invoke(ctx context.Context, method string, args ...any) (*Response, error) {
	sig, err := LookupMethod(method)
	if err != nil {
		return nil, &Error{Kind: KindUnknownMethod, Method: method, Err: err}
	}

	ctx, span := clientTracer.Start(ctx, "xmlsoccer."+sig.Name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	bound := sig.Bind(args)
	req := c.buildRequest(sig.Name, bound)
	descriptor := describe(req, bound)
	span.SetAttributes(
		attribute.String("xmlsoccer.method", sig.Name),
		attribute.String("xmlsoccer.fingerprint", req.Fingerprint),
	)

	cacheKey := c.cacheKeyPrefix + req.Fingerprint
	if cached, ok := c.readCache(ctx, cacheKey); ok {
		span.SetAttributes(attribute.Bool("xmlsoccer.cache_hit", true))
		return cached, nil
	}

	resp, err := c.send(ctx, req, descriptor)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, KindOf(err).String())
		return nil, err
	}

	if c.generateHash {
		hash, hashErr := contentHash(resp.Document)
		if hashErr != nil {
			err := &Error{Kind: KindInvalidResponse, Method: sig.Name, Request: descriptor, Message: "hash response", Err: hashErr}
			span.RecordError(err)
			return nil, err
		}
		resp.ContentHash = hash
		resp.SourceURL = descriptor.URL()
	}

	if c.cache != nil {
		resp.CachedAt = c.now()
		if err := c.writeCache(ctx, cacheKey, resp, CacheTTL(sig.Name)); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, KindCacheWriteFailed.String())
			return nil, err
		}
	}

	return resp, nil
}

func (c *Client) buildRequest(method string, args []Argument) Request {
	query := url.Values{}
	query.Set(apiKeyParam, c.apiKey)
	for _, arg := range args {
		query.Set(strings.ToLower(arg.Name), arg.Encoded)
	}
	return Request{
		Method:      method,
		Endpoint:    c.serviceURL + "/" + method,
		Query:       query,
		Fingerprint: fingerprintOf(method, args),
	}
}

func describe(req Request, args []Argument) RequestDescriptor {
	var params map[string]string
	if len(args) > 0 {
		params = make(map[string]string, len(args))
		for _, arg := range args {
			params[strings.ToLower(arg.Name)] = arg.Encoded
		}
	}
	return RequestDescriptor{
		Method:      req.Method,
		Endpoint:    req.Endpoint,
		Params:      params,
		Fingerprint: req.Fingerprint,
	}
}

// send performs the network call and classifies the outcome.
func (c *Client) send(ctx context.Context, req Request, descriptor RequestDescriptor) (*Response, error) {
	raw, err := c.transport.Send(ctx, req)
	if err != nil {
		c.logger.WarnContext(ctx, "xmlsoccer request failed", "url", descriptor.URL(), "error", c.sanitize(err.Error()))
		transportErr := &Error{Kind: KindTransport, Method: req.Method, Request: descriptor}
		if ctxErr := ctx.Err(); ctxErr != nil {
			transportErr.Err = ctxErr
		} else {
			transportErr.Message = c.sanitize(err.Error())
		}
		return nil, transportErr
	}

	if raw.StatusCode != 200 {
		return nil, &Error{
			Kind:       KindHTTPStatus,
			Method:     req.Method,
			Request:    descriptor,
			StatusCode: raw.StatusCode,
			Body:       c.sanitize(abbreviateBody(raw.Body)),
		}
	}

	doc, err := parseDocument(raw.Body)
	if err != nil {
		return nil, &Error{
			Kind:    KindInvalidResponse,
			Method:  req.Method,
			Request: descriptor,
			Body:    c.sanitize(abbreviateBody(raw.Body)),
			Message: err.Error(),
		}
	}

	text := doc.Text()
	if c.hasInvalidKeyMarker(text) {
		return nil, &Error{Kind: KindInvalidParameter, Method: req.Method, Request: descriptor, Message: c.sanitize(text)}
	}

	if strings.Contains(text, misuseMarker) {
		kind := KindRateLimited
		listed, reply, spamErr := c.checkSpamList(ctx)
		if spamErr != nil {
			c.logger.WarnContext(ctx, "xmlsoccer spam list check failed", "method", req.Method, "error", spamErr)
		}
		message := text
		if listed {
			kind = KindSpamListed
			message = reply
		}
		return nil, &Error{Kind: kind, Method: req.Method, Request: descriptor, Message: c.sanitize(message)}
	}

	return &Response{
		Method:   req.Method,
		Request:  descriptor,
		Body:     raw.Body,
		Document: doc,
	}, nil
}

// checkSpamList asks the service whether the api key was put on the spammers
// list. The reply is not cached or classified.
func (c *Client) checkSpamList(ctx context.Context) (bool, string, error) {
	req := c.buildRequest(spamCheckMethod, nil)
	raw, err := c.transport.Send(ctx, req)
	if err != nil {
		return false, "", crerr.Wrap(ErrTransport, c.sanitize(err.Error()))
	}
	if raw.StatusCode != 200 {
		return false, "", crerr.Wrapf(ErrHTTPStatus, "status=%d", raw.StatusCode)
	}

	reply := strings.TrimSpace(string(raw.Body))
	if doc, parseErr := parseDocument(raw.Body); parseErr == nil {
		reply = doc.Text()
	}
	return strings.Contains(reply, spamListedReply), reply, nil
}

func (c *Client) hasInvalidKeyMarker(text string) bool {
	if text == "" {
		return false
	}
	lowered := strings.ToLower(text)
	for _, marker := range c.invalidKeyMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

func (c *Client) readCache(ctx context.Context, key string) (*Response, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "xmlsoccer cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	resp, err := decodeCacheEntry(raw, c.now())
	if err != nil {
		c.logger.DebugContext(ctx, "xmlsoccer cache entry discarded", "key", key, "error", err)
		return nil, false
	}

	c.logger.DebugContext(ctx, "xmlsoccer cache hit", "key", key, "method", resp.Method)
	return resp, true
}

func (c *Client) writeCache(ctx context.Context, key string, resp *Response, ttl time.Duration) error {
	encoded, err := encodeCacheEntry(resp, ttl)
	if err == nil {
		err = c.cache.Set(ctx, key, encoded, ttl)
	}
	if err != nil {
		return &Error{
			Kind:    KindCacheWriteFailed,
			Method:  resp.Method,
			Request: resp.Request,
			Message: "failed to cache results",
			Err:     err,
		}
	}
	return nil
}

func (c *Client) sanitize(value string) string {
	if c.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, c.apiKey, redactedValue)
}
