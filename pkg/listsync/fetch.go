package listsync

import (
	"context"
	"sync"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/logger"
)

// Lister fetches one page of a list from the backend.
type Lister interface {
	ListPosts(ctx context.Context, kind ViewKind, f Filter) (*api.PostListResponse, error)
}

// ListerFunc adapts a function to Lister.
type ListerFunc func(ctx context.Context, kind ViewKind, f Filter) (*api.PostListResponse, error)

func (fn ListerFunc) ListPosts(ctx context.Context, kind ViewKind, f Filter) (*api.PostListResponse, error) {
	return fn(ctx, kind, f)
}

// APILister lists through the REST backend.
type APILister struct {
	// PageSize is sent as the limit; zero lets the backend choose.
	PageSize int
}

func (l APILister) ListPosts(ctx context.Context, kind ViewKind, f Filter) (*api.PostListResponse, error) {
	return api.ListPosts(ctx, kind.Scope(), Params(f, l.PageSize))
}

// Params converts a filter to backend list parameters.
func Params(f Filter, pageSize int) api.ListParams {
	f = Normalize(f)
	return api.ListParams{
		Page:     f.Page,
		Limit:    pageSize,
		By:       string(f.Sort),
		Search:   f.Search,
		Hashtag:  f.Hashtag,
		Username: f.Username,
	}
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Error(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (fn NotifierFunc) Error(message string) { fn(message) }

// ListResult is one applied page of results and the filter that produced it.
type ListResult struct {
	Items    []api.PostSummary
	PageInfo api.PageInfo
	Filter   Filter
	Token    uint64
}

// Results is the render state shared between an Orchestrator and whatever
// draws the list.
type Results struct {
	// publish serializes set and notify so subscribers see results in
	// token order.
	publish sync.Mutex
	mu      sync.Mutex
	current ListResult
	has     bool
	subs    map[int]func(ListResult)
	nextID  int
}

func NewResults() *Results {
	return &Results{subs: map[int]func(ListResult){}}
}

// Current returns the last applied result, if any.
func (r *Results) Current() (ListResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.has
}

// Subscribe registers fn to be called with each applied result.
func (r *Results) Subscribe(fn func(ListResult)) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Results) set(res ListResult) bool {
	r.publish.Lock()
	defer r.publish.Unlock()

	r.mu.Lock()
	if r.has && res.Token < r.current.Token {
		r.mu.Unlock()
		return false
	}
	r.current = res
	r.has = true
	subs := make([]func(ListResult), 0, len(r.subs))
	for id := 0; id < r.nextID; id++ {
		if fn, ok := r.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(res)
	}
	return true
}

// Outcome is what Request did with its response.
type Outcome int

const (
	// Applied means the response replaced the current result.
	Applied Outcome = iota
	// Stale means a newer request superseded this one and the response,
	// or error, was dropped.
	Stale
	// Failed means the request errored and the user was notified.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Stale:
		return "stale"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// State is the fetch state of a view.
type State int

const (
	Idle State = iota
	Fetching
)

func (s State) String() string {
	if s == Fetching {
		return "fetching"
	}
	return "idle"
}

// Orchestrator issues list fetches and applies only the latest one. Every
// Request mints a token; a response is applied only if its token is still
// the latest when it returns. In-flight requests are never cancelled.
type Orchestrator struct {
	mu       sync.Mutex
	kind     ViewKind
	lister   Lister
	notifier Notifier
	results  *Results
	latest   uint64
	inflight int
	closed   bool
}

func NewOrchestrator(kind ViewKind, lister Lister, notifier Notifier, results *Results) *Orchestrator {
	if results == nil {
		results = NewResults()
	}
	return &Orchestrator{
		kind:     kind,
		lister:   lister,
		notifier: notifier,
		results:  results,
	}
}

// Results returns the render state this orchestrator writes to.
func (o *Orchestrator) Results() *Results { return o.results }

// Request fetches f and blocks until the backend answers.
func (o *Orchestrator) Request(ctx context.Context, f Filter) Outcome {
	token, ok := o.begin()
	if !ok {
		return Stale
	}
	return o.await(ctx, token, f)
}

// begin mints the token of a new request. Callers that fetch in the
// background call it before starting the goroutine so tokens follow the
// order of the filter changes.
func (o *Orchestrator) begin() (uint64, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return 0, false
	}
	o.latest++
	o.inflight++
	return o.latest, true
}

// await runs the request minted as token and applies its response.
func (o *Orchestrator) await(ctx context.Context, token uint64, f Filter) Outcome {
	log := logger.With("list", o.kind, "token", token)
	log.Debug("Fetching list", "query", Encode(f))

	resp, err := o.lister.ListPosts(ctx, o.kind, f)
	if err == nil && resp == nil {
		resp = &api.PostListResponse{}
	}

	o.mu.Lock()
	o.inflight--
	fresh := token == o.latest && !o.closed
	o.mu.Unlock()

	switch {
	case !fresh:
		log.Debug("Dropping stale list response", "error", err)
		return Stale
	case err != nil:
		log.Warn("List fetch failed", "error", err)
		if o.notifier != nil {
			o.notifier.Error(errors.UserMessage(err))
		}
		return Failed
	}

	// A newer request may be minted and applied between the check above
	// and this write; Results refuses the older token in that case.
	if !o.results.set(ListResult{
		Items:    resp.Data,
		PageInfo: resp.Pagination,
		Filter:   f,
		Token:    token,
	}) {
		log.Debug("Dropping stale list response")
		return Stale
	}
	log.Debug("Applied list response", "items", len(resp.Data))
	return Applied
}

// State reports whether any request is in flight.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight > 0 {
		return Fetching
	}
	return Idle
}

// Close invalidates the latest token so responses still in flight land as
// stale, and refuses new requests.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.latest++
	o.closed = true
}
