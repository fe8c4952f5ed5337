package listsync

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/onesocial/cli/pkg/api"
)

// ViewKind identifies which list a view shows. It decides which filter
// fields apply, which of them exclude each other and which are fixed for
// the life of the view.
type ViewKind int

const (
	KindHome ViewKind = iota
	KindProfile
	KindAdmin
	KindSaved
	KindMine
)

// ViewKinds lists every kind.
var ViewKinds = []ViewKind{KindHome, KindProfile, KindAdmin, KindSaved, KindMine}

func (k ViewKind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindProfile:
		return "profile"
	case KindAdmin:
		return "admin"
	case KindSaved:
		return "saved"
	case KindMine:
		return "mine"
	}
	return fmt.Sprintf("ViewKind(%d)", int(k))
}

// ParseViewKind maps a command-line name to a kind.
func ParseViewKind(s string) (ViewKind, error) {
	for _, k := range ViewKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return KindHome, fmt.Errorf("unknown list %q (want home, profile, admin, saved or mine)", s)
}

type field uint8

const (
	fieldSearch field = 1 << iota
	fieldHashtag
	fieldUsername
)

// fields are the narrowing fields that apply to the kind.
func (k ViewKind) fields() field {
	switch k {
	case KindHome:
		return fieldSearch | fieldHashtag
	case KindProfile:
		return fieldUsername
	case KindAdmin:
		return fieldSearch | fieldHashtag | fieldUsername
	case KindSaved, KindMine:
		return fieldSearch
	}
	return 0
}

// Allows reports whether the query key can be changed on a list of kind.
// Page and sort always can.
func (k ViewKind) Allows(key string) bool {
	var fl field
	switch key {
	case KeyPage, KeySort:
		return true
	case KeySearch:
		fl = fieldSearch
	case KeyHashtag:
		fl = fieldHashtag
	case KeyUsername:
		fl = fieldUsername
	default:
		return false
	}
	return k.fields()&fl != 0 && k.pinned()&fl == 0
}

// exclusive are the fields of which at most one may be non-empty.
func (k ViewKind) exclusive() field {
	switch k {
	case KindHome:
		return fieldSearch | fieldHashtag
	case KindAdmin:
		return fieldSearch | fieldHashtag | fieldUsername
	case KindProfile, KindSaved, KindMine:
		return 0
	}
	return 0
}

// pinned are fixed at mount and ignored by later merges.
func (k ViewKind) pinned() field {
	switch k {
	case KindProfile:
		return fieldUsername
	case KindHome, KindAdmin, KindSaved, KindMine:
		return 0
	}
	return 0
}

// Scope is the backend collection the kind lists.
func (k ViewKind) Scope() api.ListScope {
	switch k {
	case KindSaved:
		return api.ScopeSaved
	case KindMine:
		return api.ScopeMine
	case KindHome, KindProfile, KindAdmin:
		return api.ScopeAll
	}
	return api.ScopeAll
}

// WebPath is the path of the web page showing the same list.
func (k ViewKind) WebPath(f Filter) string {
	switch k {
	case KindProfile:
		return "/profile/" + url.PathEscape(f.Username)
	case KindAdmin:
		return "/admin/posts"
	case KindSaved:
		return "/blog/saved"
	case KindMine:
		return "/blog/my"
	case KindHome:
		return "/"
	}
	return "/"
}

func (f *Filter) text(fl field) *string {
	switch fl {
	case fieldSearch:
		return &f.Search
	case fieldHashtag:
		return &f.Hashtag
	case fieldUsername:
		return &f.Username
	}
	return nil
}

func (p Partial) text(fl field) *string {
	switch fl {
	case fieldSearch:
		return p.Search
	case fieldHashtag:
		return p.Hashtag
	case fieldUsername:
		return p.Username
	}
	return nil
}

// exclusiveOrder decides which field survives when one merge sets several
// exclusive fields at once.
var exclusiveOrder = []field{fieldSearch, fieldHashtag, fieldUsername}

// Store holds the filter of one mounted view.
type Store struct {
	// publish is held across commit and notify so subscribers see changes
	// in commit order. Subscribers must not call Merge.
	publish sync.Mutex
	mu      sync.Mutex
	kind    ViewKind
	filter  Filter
	subs    map[int]func(prev, next Filter)
	nextID  int
}

// NewStore creates the store for a view of kind, starting from the defaults
// overlaid with initial and then pinned.
func NewStore(kind ViewKind, initial, pinned Partial) *Store {
	s := &Store{kind: kind, subs: map[int]func(prev, next Filter){}}

	f := DefaultFilter()
	for _, fl := range exclusiveOrder {
		if kind.pinned()&fl != 0 {
			if v := pinned.text(fl); v != nil {
				*f.text(fl) = *v
			}
		}
	}
	s.filter = Normalize(f)
	s.filter = s.apply(s.filter, initial)
	return s
}

// Kind returns the view kind the store was created for.
func (s *Store) Kind() ViewKind { return s.kind }

// Get returns the current filter.
func (s *Store) Get() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Merge overlays p on the current filter, applies the view rules and
// returns the result. Subscribers are told only when the filter changed.
func (s *Store) Merge(p Partial) Filter {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	prev := s.filter
	next := s.apply(prev, p)
	if next == prev {
		s.mu.Unlock()
		return next
	}
	s.filter = next
	subs := make([]func(prev, next Filter), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(prev, next)
	}
	return next
}

// read calls fn with the current filter while no merge can commit.
func (s *Store) read(fn func(Filter)) {
	s.publish.Lock()
	defer s.publish.Unlock()
	fn(s.Get())
}

// Replace swaps in f as a whole, for navigation to a complete query. Pinned
// fields keep their mounted value.
func (s *Store) Replace(f Filter) Filter {
	return s.Merge(Partial{
		Page:     Ptr(f.Page),
		Sort:     Ptr(f.Sort),
		Search:   Ptr(f.Search),
		Hashtag:  Ptr(f.Hashtag),
		Username: Ptr(f.Username),
	})
}

// Subscribe registers fn for filter changes, in registration order.
func (s *Store) Subscribe(fn func(prev, next Filter)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) apply(cur Filter, p Partial) Filter {
	kind := s.kind
	for _, fl := range exclusiveOrder {
		if kind.pinned()&fl != 0 {
			switch fl {
			case fieldSearch:
				p.Search = nil
			case fieldHashtag:
				p.Hashtag = nil
			case fieldUsername:
				p.Username = nil
			}
		}
	}

	next := cur.Apply(p)

	// The first exclusive field this merge sets to a non-empty value wins
	// and clears the rest of its group.
	if ex := kind.exclusive(); ex != 0 {
		for _, fl := range exclusiveOrder {
			if ex&fl == 0 {
				continue
			}
			if v := p.text(fl); v != nil && strings.TrimSpace(*v) != "" {
				for _, other := range exclusiveOrder {
					if other != fl && ex&other != 0 {
						*next.text(other) = ""
					}
				}
				break
			}
		}
	}

	narrowed := p.Search != nil || p.Hashtag != nil || p.Username != nil
	if narrowed && p.Page == nil {
		next.Page = 1
	}

	for _, fl := range exclusiveOrder {
		if kind.fields()&fl == 0 {
			*next.text(fl) = ""
		}
	}

	return Normalize(next)
}
