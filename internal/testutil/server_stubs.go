package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// StubHTTPServer blocks in ListenAndServe until Shutdown is called, like a
// real listener. A non-nil ListenErr is returned immediately instead.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
	closed        chan struct{}
	once          sync.Once
}

func (s *StubHTTPServer) init() {
	s.once.Do(func() { s.closed = make(chan struct{}) })
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.init()
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	if s.ListenErr != nil {
		return s.ListenErr
	}
	<-s.closed
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.init()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdownCalls == 0 {
		close(s.closed)
	}
	s.shutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}

// ErrListen is the failure returned by NewFailingHTTPServer.
var ErrListen = errors.New("listen failure")

// NewFailingHTTPServer returns a stub whose ListenAndServe fails at once.
func NewFailingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", HandlerVal: http.NewServeMux(), ListenErr: ErrListen}
}
