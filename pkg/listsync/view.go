package listsync

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/onesocial/cli/pkg/clock"
	"github.com/onesocial/cli/pkg/logger"
)

// Deps are the collaborators a View is mounted with.
type Deps struct {
	Lister   Lister
	Notifier Notifier
	// Clock drives the search debounce; nil means the real clock.
	Clock clock.Clock
	// Debounce is the search quiet period; zero means DefaultDebounce.
	Debounce time.Duration
	// Location is the address the filter is mirrored into; nil gives the
	// view a private History.
	Location Location
	// WebBaseURL prefixes URL.
	WebBaseURL string
	// OnQuery receives every query the view writes to its location.
	OnQuery func(query string)
}

// View is one mounted list page: its filter, search debounce, fetches and
// address reflection.
type View struct {
	ctx       context.Context
	kind      ViewKind
	deps      Deps
	store     *Store
	results   *Results
	orch      *Orchestrator
	search    *Gate[string]
	location  Location
	reflector *Reflector

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	unsub  func()
}

// Mount creates a view of kind, decodes initialQuery as its starting
// filter, applies pinned and issues the first fetch. Fetches run in the
// background; use Wait to block on them.
func Mount(ctx context.Context, deps Deps, kind ViewKind, initialQuery string, pinned Partial) *View {
	v := &View{
		ctx:     ctx,
		kind:    kind,
		deps:    deps,
		results: NewResults(),
	}

	v.store = NewStore(kind, Decode(initialQuery), pinned)
	v.orch = NewOrchestrator(kind, deps.Lister, deps.Notifier, v.results)
	v.search = NewGate(deps.Clock, deps.Debounce, func(term string) {
		v.store.Merge(Partial{Search: Ptr(term)})
	})

	v.location = deps.Location
	if v.location == nil {
		v.location = NewHistory(initialQuery)
	}
	v.reflector = Reflect(v.location, v.store, deps.OnQuery)
	v.unsub = v.store.Subscribe(func(_, next Filter) { v.fetch(next) })

	logger.Debug("Mounted list view", "list", kind, "query", Encode(v.store.Get()))
	v.store.read(v.fetch)
	return v
}

// Kind returns the view kind.
func (v *View) Kind() ViewKind { return v.kind }

// Filter returns the current filter.
func (v *View) Filter() Filter { return v.store.Get() }

// Result returns the last applied result.
func (v *View) Result() (ListResult, bool) { return v.results.Current() }

// Results exposes the render state for subscription.
func (v *View) Results() *Results { return v.results }

// State reports whether a fetch is in flight.
func (v *View) State() State { return v.orch.State() }

// Location returns the address the view mirrors its filter into.
func (v *View) Location() Location { return v.location }

// Query returns the encoded current filter.
func (v *View) Query() string { return v.reflector.LastQuery() }

// URL returns the shareable web address of the current list.
func (v *View) URL() string {
	f := v.store.Get()
	q := f
	if v.kind.pinned()&fieldUsername != 0 {
		// Already part of the path.
		q.Username = ""
	}
	u := strings.TrimRight(v.deps.WebBaseURL, "/") + v.kind.WebPath(f)
	if enc := Encode(q); enc != "" {
		u += "?" + enc
	}
	return u
}

// SetSearch updates the search term once typing has paused.
func (v *View) SetSearch(term string) {
	v.search.Schedule(term, 0)
}

// SubmitSearch applies term immediately, dropping any pending input.
func (v *View) SubmitSearch(term string) Filter {
	v.search.Cancel()
	return v.store.Merge(Partial{Search: Ptr(term)})
}

// FlushSearch applies pending search input now.
func (v *View) FlushSearch() bool {
	return v.search.Flush()
}

// CancelSearch drops pending search input.
func (v *View) CancelSearch() {
	v.search.Cancel()
}

// SetHashtag selects a hashtag. Pending search input is dropped so it
// cannot clear the hashtag when it fires.
func (v *View) SetHashtag(tag string) Filter {
	v.search.Cancel()
	return v.store.Merge(Partial{Hashtag: Ptr(strings.TrimPrefix(strings.TrimSpace(tag), "#"))})
}

// SetUsername narrows an admin list to one author.
func (v *View) SetUsername(username string) Filter {
	v.search.Cancel()
	return v.store.Merge(Partial{Username: Ptr(username)})
}

// SetSort changes the sort mode and keeps the page.
func (v *View) SetSort(mode SortMode) Filter {
	return v.store.Merge(Partial{Sort: Ptr(mode)})
}

// SetPage jumps to page n.
func (v *View) SetPage(n int) Filter {
	return v.store.Merge(Partial{Page: Ptr(n)})
}

// NextPage moves forward one page, stopping at the last known page.
func (v *View) NextPage() Filter {
	f := v.store.Get()
	if res, ok := v.results.Current(); ok && f.Page >= res.PageInfo.TotalPages() {
		return f
	}
	return v.SetPage(f.Page + 1)
}

// PrevPage moves back one page, stopping at page 1.
func (v *View) PrevPage() Filter {
	f := v.store.Get()
	if f.Page <= 1 {
		return f
	}
	return v.SetPage(f.Page - 1)
}

// Navigate treats query as an address the user went to. Keys it leaves out
// reset to their defaults.
func (v *View) Navigate(query string) {
	if nav, ok := v.location.(Navigator); ok {
		nav.Push(query)
		return
	}
	v.reflector.navigated(NavEvent{Kind: NavPush, Query: query})
}

// Back moves the location back one entry, if it keeps history.
func (v *View) Back() bool {
	if nav, ok := v.location.(Navigator); ok {
		return nav.Back()
	}
	return false
}

// Forward moves the location forward one entry, if it keeps history.
func (v *View) Forward() bool {
	if nav, ok := v.location.(Navigator); ok {
		return nav.Forward()
	}
	return false
}

// Refresh refetches the current filter.
func (v *View) Refresh() {
	v.store.read(v.fetch)
}

// Wait blocks until every fetch started so far has returned.
func (v *View) Wait() {
	v.wg.Wait()
}

// Close unmounts the view. Fetches still in flight finish but are ignored.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()

	v.search.Stop()
	v.unsub()
	v.reflector.Detach()
	v.orch.Close()
	logger.Debug("Closed list view", "list", v.kind)
}

func (v *View) fetch(f Filter) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.wg.Add(1)
	v.mu.Unlock()

	token, ok := v.orch.begin()
	if !ok {
		v.wg.Done()
		return
	}
	go func() {
		defer v.wg.Done()
		v.orch.await(v.ctx, token, f)
	}()
}

// ViewID names a mounted view.
type ViewID string

// Registry keeps the mounted views by identity. Mounting an id that is
// already mounted closes the old view first.
type Registry struct {
	mu    sync.Mutex
	views map[ViewID]*View
}

func NewRegistry() *Registry {
	return &Registry{views: map[ViewID]*View{}}
}

// Mount mounts a view under id.
func (r *Registry) Mount(ctx context.Context, id ViewID, deps Deps, kind ViewKind, initialQuery string, pinned Partial) *View {
	v := Mount(ctx, deps, kind, initialQuery, pinned)

	r.mu.Lock()
	old := r.views[id]
	r.views[id] = v
	r.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return v
}

// Get returns the view mounted under id.
func (r *Registry) Get(id ViewID) (*View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	return v, ok
}

// Unmount closes and forgets the view under id.
func (r *Registry) Unmount(id ViewID) {
	r.mu.Lock()
	v := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if v != nil {
		v.Close()
	}
}

// Len returns the number of mounted views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// CloseAll unmounts every view.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = map[ViewID]*View{}
	r.mu.Unlock()

	for _, v := range views {
		v.Close()
	}
}
