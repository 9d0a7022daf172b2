package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// RoundTripperFunc adapts a function into an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Response builds an http.Response with the given status and body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// Upstream is a scripted fake NHL API. Paths map to a queue of responses; the
// last response in a queue repeats. Unknown paths answer 404.
type Upstream struct {
	mu       sync.Mutex
	routes   map[string][]StubResponse
	requests []string
}

// StubResponse is one scripted answer; Err simulates a transport failure.
type StubResponse struct {
	Status int
	Body   string
	Err    error
}

func NewUpstream() *Upstream {
	return &Upstream{routes: make(map[string][]StubResponse)}
}

// On queues responses for the given URL path.
func (u *Upstream) On(path string, responses ...StubResponse) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = append(u.routes[path], responses...)
	return u
}

// Client returns an http.Client that answers from the script.
func (u *Upstream) Client() *http.Client {
	return &http.Client{Transport: RoundTripperFunc(u.roundTrip)}
}

// Requests returns the paths requested so far, in order.
func (u *Upstream) Requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]string, len(u.requests))
	copy(out, u.requests)
	return out
}

// Count returns how many times path was requested.
func (u *Upstream) Count(path string) int {
	n := 0
	for _, p := range u.Requests() {
		if p == path {
			n++
		}
	}
	return n
}

func (u *Upstream) roundTrip(req *http.Request) (*http.Response, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	path := req.URL.Path
	u.requests = append(u.requests, path)

	queue, ok := u.routes[path]
	if !ok || len(queue) == 0 {
		resp := Response(http.StatusNotFound, `{"message":"not found"}`)
		resp.Request = req
		return resp, nil
	}
	next := queue[0]
	if len(queue) > 1 {
		u.routes[path] = queue[1:]
	}
	if next.Err != nil {
		return nil, next.Err
	}
	resp := Response(next.Status, next.Body)
	resp.Request = req
	return resp, nil
}
