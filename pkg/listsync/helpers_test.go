package listsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/onesocial/cli/pkg/api"
)

// recorder collects notifications.
type recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// pageOf builds a response with n items tagged with the filter's query.
func pageOf(f Filter, n int) *api.PostListResponse {
	resp := &api.PostListResponse{Pagination: api.PageInfo{Page: f.Page, Limit: 10, TotalRows: 30}}
	for i := 0; i < n; i++ {
		resp.Data = append(resp.Data, api.PostSummary{
			ID:    fmt.Sprintf("%s#%d", Encode(f), i),
			Title: fmt.Sprintf("post %d", i),
		})
	}
	return resp
}

// countingLister answers immediately and records every filter it saw.
type countingLister struct {
	mu    sync.Mutex
	calls []Filter
	err   error
	items int
}

func (l *countingLister) ListPosts(_ context.Context, _ ViewKind, f Filter) (*api.PostListResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, f)
	if l.err != nil {
		return nil, l.err
	}
	n := l.items
	if n == 0 {
		n = 3
	}
	return pageOf(f, n), nil
}

func (l *countingLister) seen() []Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Filter(nil), l.calls...)
}

func (l *countingLister) setErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// gatedCall is one request held by a gatedLister until released.
type gatedCall struct {
	filter  Filter
	release chan error
}

// gatedLister blocks every call until the test releases it, so tests pick
// the completion order.
type gatedLister struct {
	calls chan gatedCall
}

func newGatedLister() *gatedLister {
	return &gatedLister{calls: make(chan gatedCall, 16)}
}

func (l *gatedLister) ListPosts(ctx context.Context, _ ViewKind, f Filter) (*api.PostListResponse, error) {
	c := gatedCall{filter: f, release: make(chan error, 1)}
	l.calls <- c
	select {
	case err := <-c.release:
		if err != nil {
			return nil, err
		}
		return pageOf(f, 2), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// networkErr mimics a dial failure.
type networkErr struct{}

func (networkErr) Error() string   { return "dial tcp 127.0.0.1:8000: connect: connection refused" }
func (networkErr) Timeout() bool   { return false }
func (networkErr) Temporary() bool { return true }

// concurrently runs every fn on its own goroutine, released together.
func concurrently(fns ...func()) {
	start := make(chan struct{})
	var wg sync.WaitGroup
	for _, fn := range fns {
		wg.Add(1)
		go func(fn func()) {
			defer wg.Done()
			<-start
			fn()
		}(fn)
	}
	close(start)
	wg.Wait()
}
