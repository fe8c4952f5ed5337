package listsync

import (
	"os"
	"path/filepath"
	"sync"

	json "github.com/json-iterator/go"

	"github.com/onesocial/cli/pkg/logger"
)

// NavKind says how a location changed.
type NavKind int

const (
	NavPush NavKind = iota
	NavBack
	NavForward
)

func (k NavKind) String() string {
	switch k {
	case NavPush:
		return "push"
	case NavBack:
		return "back"
	case NavForward:
		return "forward"
	}
	return "unknown"
}

// NavEvent is a location change the Reflector did not make itself.
type NavEvent struct {
	Kind  NavKind
	Query string
}

// Location is an address whose query part mirrors a view's filter.
// Replace rewrites the current entry in place and must not notify
// listeners.
type Location interface {
	Query() string
	Replace(query string)
	Listen(fn func(NavEvent)) (unlisten func())
}

// Navigator is a Location that can also be moved by the user.
type Navigator interface {
	Location
	Push(query string)
	Back() bool
	Forward() bool
}

// DefaultHistoryLimit bounds the entries a History keeps.
const DefaultHistoryLimit = 50

// History is an in-memory, browser-like Navigator.
type History struct {
	mu        sync.Mutex
	entries   []string
	index     int
	limit     int
	listeners map[int]func(NavEvent)
	nextID    int
}

// NewHistory starts a history with one entry.
func NewHistory(initial string) *History {
	return &History{
		entries:   []string{rawQuery(initial)},
		limit:     DefaultHistoryLimit,
		listeners: map[int]func(NavEvent){},
	}
}

func (h *History) Query() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

func (h *History) Replace(query string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = query
}

// Push drops any forward entries and appends query as the current one.
func (h *History) Push(query string) {
	query = rawQuery(query)

	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], query)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.index = len(h.entries) - 1
	h.mu.Unlock()

	h.emit(NavEvent{Kind: NavPush, Query: query})
}

func (h *History) Back() bool {
	h.mu.Lock()
	if h.index == 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	q := h.entries[h.index]
	h.mu.Unlock()

	h.emit(NavEvent{Kind: NavBack, Query: q})
	return true
}

func (h *History) Forward() bool {
	h.mu.Lock()
	if h.index >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}
	h.index++
	q := h.entries[h.index]
	h.mu.Unlock()

	h.emit(NavEvent{Kind: NavForward, Query: q})
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) Listen(fn func(NavEvent)) (unlisten func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

func (h *History) emit(ev NavEvent) {
	h.mu.Lock()
	fns := make([]func(NavEvent), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Reflector keeps a Location and a Store in step. Store changes are written
// with Replace; navigation events are merged back into the store unless
// they carry the query the reflector last wrote.
type Reflector struct {
	mu       sync.Mutex
	loc      Location
	store    *Store
	last     string
	unsubs   []func()
	onChange func(query string)
}

// Reflect attaches a Reflector and writes the store's current filter to loc.
// onChange, if set, receives every query the reflector writes.
func Reflect(loc Location, store *Store, onChange func(query string)) *Reflector {
	r := &Reflector{loc: loc, store: store, onChange: onChange}
	r.write(store.Get())
	r.unsubs = append(r.unsubs,
		store.Subscribe(func(_, next Filter) { r.write(next) }),
		loc.Listen(r.navigated),
	)
	return r
}

// LastQuery is the query most recently written to the location.
func (r *Reflector) LastQuery() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Detach stops both directions of reflection.
func (r *Reflector) Detach() {
	r.mu.Lock()
	unsubs := r.unsubs
	r.unsubs = nil
	r.mu.Unlock()

	for _, fn := range unsubs {
		fn()
	}
}

func (r *Reflector) write(f Filter) {
	q := Encode(f)

	r.mu.Lock()
	r.last = q
	r.mu.Unlock()

	if r.loc.Query() != q {
		r.loc.Replace(q)
	}
	if r.onChange != nil {
		r.onChange(q)
	}
}

func (r *Reflector) navigated(ev NavEvent) {
	incoming := Complete(Decode(ev.Query))
	if Encode(incoming) != r.LastQuery() {
		logger.Debug("External navigation", "kind", ev.Kind, "query", ev.Query)
		// Keys the new address leaves out go back to their defaults.
		r.store.Replace(incoming)
	}

	// The address can still carry keys the view ignores or a spelling the
	// store does not change on.
	r.store.read(func(f Filter) {
		if r.loc.Query() != Encode(f) {
			r.write(f)
		}
	})
}

// lastQueries is the on-disk form of the resume file.
type lastQueries map[string]string

func lastQueriesPath(dir string) string {
	return filepath.Join(dir, "last_lists.json")
}

// SaveLastQuery records query as the last location of kind under dir.
func SaveLastQuery(dir string, kind ViewKind, query string) error {
	all, err := readLastQueries(dir)
	if err != nil {
		all = lastQueries{}
	}
	all[kind.String()] = query

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(lastQueriesPath(dir), data, 0600)
}

// LoadLastQuery returns the last recorded location of kind, or "" if none
// was saved.
func LoadLastQuery(dir string, kind ViewKind) (string, error) {
	all, err := readLastQueries(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return all[kind.String()], nil
}

func readLastQueries(dir string) (lastQueries, error) {
	data, err := os.ReadFile(lastQueriesPath(dir))
	if err != nil {
		return nil, err
	}
	all := lastQueries{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	return all, nil
}
