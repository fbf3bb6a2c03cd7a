package monopay

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

type stubReply struct {
	status int
	body   string
}

// fakeGateway answers by path and records every request it sees.
type fakeGateway struct {
	t       *testing.T
	mu      sync.Mutex
	replies map[string][]stubReply
	calls   []capturedRequest
	server  *httptest.Server
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()
	g := &fakeGateway{t: t, replies: map[string][]stubReply{}}
	g.server = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.server.Close)
	return g
}

// reply queues a response for path; the last queued reply repeats.
func (g *fakeGateway) reply(path string, status int, body string) *fakeGateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replies["/"+path] = append(g.replies["/"+path], stubReply{status: status, body: body})
	return g
}

func (g *fakeGateway) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	if len(raw) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		_ = dec.Decode(&body)
	}

	g.mu.Lock()
	g.calls = append(g.calls, capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	queue := g.replies[r.URL.Path]
	var rep stubReply
	switch len(queue) {
	case 0:
		rep = stubReply{status: http.StatusNotFound, body: `{"errorDescription":"no stub"}`}
	case 1:
		rep = queue[0]
	default:
		rep = queue[0]
		g.replies[r.URL.Path] = queue[1:]
	}
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = w.Write([]byte(rep.body))
}

func (g *fakeGateway) requests() []capturedRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]capturedRequest(nil), g.calls...)
}

func (g *fakeGateway) client(opts ...Option) *Client {
	g.t.Helper()
	opts = append([]Option{WithBaseURL(g.server.URL)}, opts...)
	c, err := New("test-token-1234", opts...)
	require.NoError(g.t, err)
	return c
}

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, kind, e.Kind, "error: %v", err)
	return e
}
