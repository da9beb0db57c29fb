package xmlsoccer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/cache"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
)

const testAPIKey = "SECRETKEY"

type fakeTransport struct {
	mu        sync.Mutex
	responses map[string]TransportResponse
	errs      map[string]error
	requests  []Request
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		responses: make(map[string]TransportResponse),
		errs:      make(map[string]error),
	}
}

func (f *fakeTransport) respond(method string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method] = TransportResponse{StatusCode: status, Body: []byte(body)}
}

func (f *fakeTransport) fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

func (f *fakeTransport) Send(_ context.Context, req Request) (TransportResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if err := f.errs[req.Method]; err != nil {
		return TransportResponse{}, err
	}
	if resp, ok := f.responses[req.Method]; ok {
		return resp, nil
	}
	return TransportResponse{StatusCode: 404, Body: []byte("no route")}, nil
}

func (f *fakeTransport) calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.requests {
		if req.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeTransport) last() Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache is read only")
}

func newTestClient(t *testing.T, transport Transport, c Cache, hash bool) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{
		ServiceURL:   "http://xmlsoccer.test/FootballData.asmx/",
		APIKey:       testAPIKey,
		GenerateHash: hash,
		Cache:        c,
		Transport:    transport,
		Logger:       logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClient_ValidatesConfig(t *testing.T) {
	t.Parallel()

	cases := map[string]ClientConfig{
		"empty url":   {APIKey: "k"},
		"invalid url": {ServiceURL: "not a url", APIKey: "k"},
		"empty key":   {ServiceURL: DefaultServiceURL, APIKey: "  "},
	}
	for name, cfg := range cases {
		if _, err := NewClient(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestInvoke_BuildsEndpointAndQuery(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.respond("GetFixturesByLeagueAndSeason", 200, `<XMLSOCCER.COM></XMLSOCCER.COM>`)
	client := newTestClient(t, transport, nil, false)

	resp, err := client.Invoke(context.Background(), "getfixturesbyleagueandseason", 3, "2526")
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}

	req := transport.last()
	if req.Endpoint != "http://xmlsoccer.test/FootballData.asmx/GetFixturesByLeagueAndSeason" {
		t.Fatalf("unexpected endpoint %s", req.Endpoint)
	}
	if req.Query.Get("apikey") != testAPIKey || req.Query.Get("league") != "3" || req.Query.Get("seasondatestring") != "2526" {
		t.Fatalf("unexpected query %v", req.Query)
	}
	if resp.Method != "GetFixturesByLeagueAndSeason" || resp.FromCache {
		t.Fatalf("unexpected response %+v", resp)
	}
	if strings.Contains(resp.Request.URL(), testAPIKey) {
		t.Fatalf("descriptor must not expose the api key: %s", resp.Request.URL())
	}
}

func TestInvoke_UnknownMethodSendsNothing(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	client := newTestClient(t, transport, nil, false)

	_, err := client.Invoke(context.Background(), "DropAllTables")
	if KindOf(err) != KindUnknownMethod || !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected unknown method, got %v", err)
	}
	if len(transport.requests) != 0 {
		t.Fatalf("expected no request, got %d", len(transport.requests))
	}
}

func TestInvoke_CacheRoundTripMakesOneNetworkCall(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.respond("GetAllTeamsByLeagueAndSeason", 200, `<XMLSOCCER.COM><Team><Team_Id>45</Team_Id></Team><AccountInformation>a</AccountInformation></XMLSOCCER.COM>`)
	store := cache.NewStore(time.Minute, 0)
	client := newTestClient(t, transport, store, true)
	ctx := context.Background()

	first, err := client.Invoke(ctx, "GetAllTeamsByLeagueAndSeason", 1, "2526")
	if err != nil {
		t.Fatalf("first invoke: %v", err)
	}
	second, err := client.Invoke(ctx, "GetAllTeamsByLeagueAndSeason", "1", "2526")
	if err != nil {
		t.Fatalf("second invoke: %v", err)
	}

	if n := transport.calls("GetAllTeamsByLeagueAndSeason"); n != 1 {
		t.Fatalf("expected one network call, got %d", n)
	}
	if first.FromCache || !second.FromCache {
		t.Fatalf("unexpected cache flags first=%v second=%v", first.FromCache, second.FromCache)
	}
	if first.ContentHash == "" || first.ContentHash != second.ContentHash {
		t.Fatalf("expected cached hash to survive: %q vs %q", first.ContentHash, second.ContentHash)
	}
	if !strings.Contains(second.SourceURL, "apikey=REDACTED") {
		t.Fatalf("expected redacted source url, got %s", second.SourceURL)
	}
	if second.Document.Child("Team").ChildText("Team_Id") != "45" {
		t.Fatalf("expected cached document to be parsed")
	}

	if _, err := client.Invoke(ctx, "GetAllTeamsByLeagueAndSeason", 2, "2526"); err != nil {
		t.Fatalf("third invoke: %v", err)
	}
	if n := transport.calls("GetAllTeamsByLeagueAndSeason"); n != 2 {
		t.Fatalf("expected different args to miss the cache, got %d calls", n)
	}
}

func TestInvoke_ExpiredEntryRefetches(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	transport := newFakeTransport()
	transport.respond("GetLiveScore", 200, `<XMLSOCCER.COM><Match><Id>1</Id></Match></XMLSOCCER.COM>`)

	client, err := NewClient(ClientConfig{
		ServiceURL: DefaultServiceURL,
		APIKey:     testAPIKey,
		Cache:      cache.NewStore(time.Hour, 0),
		Transport:  transport,
		Logger:     logging.NewNop(),
		Now:        func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx := context.Background()
	if _, err := client.Invoke(ctx, "GetLiveScore"); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	now = now.Add(30 * time.Second)
	if _, err := client.Invoke(ctx, "GetLiveScore"); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if n := transport.calls("GetLiveScore"); n != 2 {
		t.Fatalf("expected live score to expire after 25s, got %d calls", n)
	}
}

type recordingCache struct {
	mu   sync.Mutex
	keys []string
}

func (r *recordingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return nil, false, nil
}

func (r *recordingCache) Set(_ context.Context, key string, _ []byte, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return nil
}

func TestInvoke_CacheKeyCarriesPrefixOnce(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.respond("GetAllLeagues", 200, `<XMLSOCCER.COM><League><Id>3</Id></League></XMLSOCCER.COM>`)
	recorder := &recordingCache{}
	client, err := NewClient(ClientConfig{
		ServiceURL:     DefaultServiceURL,
		APIKey:         testAPIKey,
		Cache:          recorder,
		CacheKeyPrefix: "import:",
		Transport:      transport,
		Logger:         logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Invoke(context.Background(), "GetAllLeagues"); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	fingerprint, _ := Fingerprint("GetAllLeagues")
	want := "import:" + fingerprint
	if len(recorder.keys) != 2 || recorder.keys[0] != want || recorder.keys[1] != want {
		t.Fatalf("expected get and set on %q, got %q", want, recorder.keys)
	}
}

func TestInvoke_CacheWriteFailureFailsTheCall(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.respond("GetAllLeagues", 200, `<XMLSOCCER.COM><League><Id>1</Id></League></XMLSOCCER.COM>`)
	client := newTestClient(t, transport, failingCache{}, false)

	resp, err := client.Invoke(context.Background(), "GetAllLeagues")
	if resp != nil {
		t.Fatalf("expected no response on cache write failure")
	}
	if !errors.Is(err, ErrCacheWriteFailed) {
		t.Fatalf("expected ErrCacheWriteFailed, got %v", err)
	}
}

func TestInvoke_ClassifiesFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		status   int
		body     string
		spam     string
		wantKind ErrorKind
	}{
		{name: "http status", status: 503, body: "maintenance", wantKind: KindHTTPStatus},
		{name: "empty body", status: 200, body: "", wantKind: KindInvalidResponse},
		{name: "malformed xml", status: 200, body: "<XMLSOCCER.COM><League>", wantKind: KindInvalidResponse},
		{name: "invalid key", status: 200, body: `<string>Invalid API key. Please check your key.</string>`, wantKind: KindInvalidParameter},
		{
			name:     "invalid key wins over misuse",
			status:   200,
			body:     `<string>Invalid API key. To avoid misuse of the service, wait.</string>`,
			spam:     "<string>Yes</string>",
			wantKind: KindInvalidParameter,
		},
		{
			name:     "rate limited",
			status:   200,
			body:     `<string>To avoid misuse of the service, please wait 5 minutes.</string>`,
			spam:     "<string>No, you are not on the list</string>",
			wantKind: KindRateLimited,
		},
		{
			name:     "spam listed",
			status:   200,
			body:     `<string>To avoid misuse of the service, please wait 5 minutes.</string>`,
			spam:     "<string>Yes, your api key is on the list</string>",
			wantKind: KindSpamListed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			transport := newFakeTransport()
			transport.respond("GetAllLeagues", tc.status, tc.body)
			if tc.spam != "" {
				transport.respond(spamCheckMethod, 200, tc.spam)
			}
			client := newTestClient(t, transport, cache.NewStore(time.Minute, 0), false)

			_, err := client.Invoke(context.Background(), "GetAllLeagues")
			if got := KindOf(err); got != tc.wantKind {
				t.Fatalf("expected %s, got %s (%v)", tc.wantKind, got, err)
			}
			if !errors.Is(err, tc.wantKind.sentinel()) {
				t.Fatalf("expected errors.Is against %s sentinel", tc.wantKind)
			}

			var clientErr *Error
			if !errors.As(err, &clientErr) || clientErr.Method != "GetAllLeagues" || clientErr.Request.Fingerprint == "" {
				t.Fatalf("expected method and request descriptor on error, got %+v", clientErr)
			}
			if strings.Contains(err.Error(), testAPIKey) {
				t.Fatalf("error leaks api key: %v", err)
			}
		})
	}
}

func TestInvoke_SpamCheckFailureIsRateLimited(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.respond("GetLiveScore", 200, `<string>To avoid misuse of the service, please wait.</string>`)
	transport.fail(spamCheckMethod, errors.New("connection reset"))
	client := newTestClient(t, transport, nil, false)

	_, err := client.Invoke(context.Background(), "GetLiveScore")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if !KindOf(err).Throttled() {
		t.Fatalf("rate limit should be a throttled kind")
	}
}

func TestInvoke_TransportErrorIsSanitized(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.fail("GetAllLeagues", errors.New("dial tcp: lookup for /GetAllLeagues?apikey="+testAPIKey+" failed"))
	client := newTestClient(t, transport, nil, false)

	_, err := client.Invoke(context.Background(), "GetAllLeagues")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if strings.Contains(err.Error(), testAPIKey) || !strings.Contains(err.Error(), "REDACTED") {
		t.Fatalf("expected api key to be redacted: %v", err)
	}
}

func TestInvoke_CancelledContextCarriesCause(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	transport.fail("GetAllLeagues", context.Canceled)
	client := newTestClient(t, transport, nil, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Invoke(ctx, "GetAllLeagues")
	if !errors.Is(err, ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected transport error wrapping context.Canceled, got %v", err)
	}
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	resp := &Response{Method: "GetAllLeagues", Body: []byte(`<XMLSOCCER.COM><League><Id>7</Id><Name>Serie A</Name></League></XMLSOCCER.COM>`)}
	var feed leagueFeed
	if err := resp.Decode(&feed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(feed.Leagues) != 1 || feed.Leagues[0].Name != "Serie A" {
		t.Fatalf("unexpected feed %+v", feed)
	}

	var nilResp *Response
	if err := nilResp.Decode(&feed); err == nil {
		t.Fatalf("expected error decoding nil response")
	}
}
