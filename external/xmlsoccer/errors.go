package xmlsoccer

import (
	stderrors "errors"
	"net/url"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// ErrorKind classifies why a call failed.
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindHTTPStatus
	KindInvalidResponse
	KindInvalidParameter
	KindRateLimited
	KindSpamListed
	KindCacheWriteFailed
	KindUnknownMethod
)

var (
	ErrTransport        = crerr.New("xmlsoccer transport failure")
	ErrHTTPStatus       = crerr.New("xmlsoccer unexpected http status")
	ErrInvalidResponse  = crerr.New("xmlsoccer invalid response")
	ErrInvalidParameter = crerr.New("xmlsoccer invalid parameter")
	ErrRateLimited      = crerr.New("xmlsoccer rate limited")
	ErrSpamListed       = crerr.New("xmlsoccer api key is spam listed")
	ErrCacheWriteFailed = crerr.New("xmlsoccer cache write failed")
	ErrUnknownMethod    = crerr.New("xmlsoccer unknown method")
	ErrInvalidConfig    = crerr.New("xmlsoccer invalid client config")
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindInvalidResponse:
		return "invalid_response"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindRateLimited:
		return "rate_limited"
	case KindSpamListed:
		return "spam_listed"
	case KindCacheWriteFailed:
		return "cache_write_failed"
	case KindUnknownMethod:
		return "unknown_method"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindHTTPStatus:
		return ErrHTTPStatus
	case KindInvalidResponse:
		return ErrInvalidResponse
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindRateLimited:
		return ErrRateLimited
	case KindSpamListed:
		return ErrSpamListed
	case KindCacheWriteFailed:
		return ErrCacheWriteFailed
	case KindUnknownMethod:
		return ErrUnknownMethod
	default:
		return nil
	}
}

// Throttled reports whether the service refused the call for account usage reasons.
func (k ErrorKind) Throttled() bool {
	return k == KindRateLimited || k == KindSpamListed
}

// RequestDescriptor identifies the outgoing request. The api key is never stored.
type RequestDescriptor struct {
	Method      string            `json:"method"`
	Endpoint    string            `json:"endpoint"`
	Params      map[string]string `json:"params,omitempty"`
	Fingerprint string            `json:"fingerprint"`
}

// URL renders the request with the api key redacted.
func (d RequestDescriptor) URL() string {
	if d.Endpoint == "" {
		return ""
	}
	values := url.Values{}
	values.Set(apiKeyParam, redactedValue)
	for key, value := range d.Params {
		values.Set(key, value)
	}
	return d.Endpoint + "?" + values.Encode()
}

// Error is returned by every failed Invoke.
type Error struct {
	Kind       ErrorKind
	Method     string
	Request    RequestDescriptor
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("xmlsoccer ")
	if e.Method != "" {
		b.WriteString(e.Method)
		b.WriteString(" ")
	}
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		b.WriteString(" status=")
		b.WriteString(strconv.Itoa(e.StatusCode))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Body != "" {
		b.WriteString(" body=")
		b.WriteString(e.Body)
	}
	return b.String()
}

func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification of err, or zero when err did not come from Invoke.
func KindOf(err error) ErrorKind {
	var clientErr *Error
	if stderrors.As(err, &clientErr) {
		return clientErr.Kind
	}
	return 0
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
