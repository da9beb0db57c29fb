package xmlsoccer

import (
	"context"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// Cache stores encoded responses by fingerprint. Get reports a miss with
// ok=false; Set must fail loudly when the value was not stored.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type cacheEntry struct {
	Request     RequestDescriptor `json:"request"`
	Body        []byte            `json:"body"`
	ContentHash string            `json:"content_hash,omitempty"`
	SourceURL   string            `json:"source_url,omitempty"`
	CachedAt    time.Time         `json:"cached_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

func encodeCacheEntry(resp *Response, ttl time.Duration) ([]byte, error) {
	entry := cacheEntry{
		Request:     resp.Request,
		Body:        resp.Body,
		ContentHash: resp.ContentHash,
		SourceURL:   resp.SourceURL,
		CachedAt:    resp.CachedAt,
		ExpiresAt:   resp.CachedAt.Add(ttl),
	}
	encoded, err := sonic.Marshal(entry)
	if err != nil {
		return nil, crerr.Wrap(err, "encode cache entry")
	}
	return encoded, nil
}

// decodeCacheEntry rebuilds a response from a stored entry. Entries past
// their expiry are rejected even if the backend still returned them.
func decodeCacheEntry(raw []byte, now time.Time) (*Response, error) {
	var entry cacheEntry
	if err := sonic.Unmarshal(raw, &entry); err != nil {
		return nil, crerr.Wrap(err, "decode cache entry")
	}
	if !entry.ExpiresAt.IsZero() && !entry.ExpiresAt.After(now) {
		return nil, crerr.Newf("cache entry expired at %s", entry.ExpiresAt.Format(time.RFC3339))
	}

	doc, err := parseDocument(entry.Body)
	if err != nil {
		return nil, crerr.Wrap(err, "parse cached body")
	}

	return &Response{
		Method:      entry.Request.Method,
		Request:     entry.Request,
		Body:        entry.Body,
		Document:    doc,
		ContentHash: entry.ContentHash,
		SourceURL:   entry.SourceURL,
		CachedAt:    entry.CachedAt,
		FromCache:   true,
	}, nil
}
