// Package listsync keeps a paginated, filterable post list in step with
// its shareable query string. A View owns one filter Store, a debounce
// Gate for search input, an Orchestrator that drops stale responses and a
// Reflector that mirrors the filter into a Location.
package listsync

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/onesocial/cli/pkg/logger"
)

// SortMode is the "by" query value.
type SortMode string

const (
	SortAll     SortMode = "all"
	SortNewest  SortMode = "newest"
	SortPopular SortMode = "popular"
)

// SortModes lists every mode in display order.
var SortModes = []SortMode{SortAll, SortNewest, SortPopular}

func (m SortMode) Valid() bool {
	switch m {
	case SortAll, SortNewest, SortPopular:
		return true
	}
	return false
}

// Next cycles to the following mode, wrapping around.
func (m SortMode) Next() SortMode {
	switch m {
	case SortAll:
		return SortNewest
	case SortNewest:
		return SortPopular
	default:
		return SortAll
	}
}

// ParseSortMode accepts a "by" value case-insensitively.
func ParseSortMode(s string) (SortMode, bool) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return SortAll, false
	}
	return m, true
}

// Query keys.
const (
	KeyPage     = "page"
	KeySort     = "by"
	KeySearch   = "search"
	KeyHashtag  = "hashtag"
	KeyUsername = "username"
)

// Filter is the full list query for one view.
type Filter struct {
	Page     int
	Sort     SortMode
	Search   string
	Hashtag  string
	Username string
}

// DefaultFilter is page 1 sorted by "all" with no narrowing.
func DefaultFilter() Filter {
	return Filter{Page: 1, Sort: SortAll}
}

// Partial carries only the fields a caller provided. Nil means absent.
type Partial struct {
	Page     *int
	Sort     *SortMode
	Search   *string
	Hashtag  *string
	Username *string
}

// Ptr returns a pointer to v, for building Partials inline.
func Ptr[T any](v T) *T { return &v }

// IsZero reports whether no field is set.
func (p Partial) IsZero() bool {
	return p.Page == nil && p.Sort == nil && p.Search == nil && p.Hashtag == nil && p.Username == nil
}

// Apply overlays the set fields of p onto f without any view rules.
func (f Filter) Apply(p Partial) Filter {
	if p.Page != nil {
		f.Page = *p.Page
	}
	if p.Sort != nil {
		f.Sort = *p.Sort
	}
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Hashtag != nil {
		f.Hashtag = *p.Hashtag
	}
	if p.Username != nil {
		f.Username = *p.Username
	}
	return f
}

// Complete fills every field p leaves absent with its default.
func Complete(p Partial) Filter {
	return Normalize(DefaultFilter().Apply(p))
}

// Normalize clamps the page, replaces an unknown sort with "all" and trims
// the text fields.
func Normalize(f Filter) Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if !f.Sort.Valid() {
		f.Sort = SortAll
	}
	f.Search = strings.TrimSpace(f.Search)
	f.Hashtag = strings.TrimSpace(f.Hashtag)
	f.Username = strings.TrimSpace(f.Username)
	return f
}

// Encode renders f as a query string without the leading '?'. Keys holding
// their default are left out and the rest are sorted, so equal filters
// always produce equal strings.
func Encode(f Filter) string {
	f = Normalize(f)
	v := url.Values{}
	if f.Page != 1 {
		v.Set(KeyPage, strconv.Itoa(f.Page))
	}
	if f.Sort != SortAll {
		v.Set(KeySort, string(f.Sort))
	}
	if f.Search != "" {
		v.Set(KeySearch, f.Search)
	}
	if f.Hashtag != "" {
		v.Set(KeyHashtag, f.Hashtag)
	}
	if f.Username != "" {
		v.Set(KeyUsername, f.Username)
	}
	return v.Encode()
}

// Decode parses a query string, a "?query" or a full URL into the known
// keys. Unknown keys are ignored. A page that is not a positive integer
// decodes as 1 and an unknown sort as "all". A query that cannot be parsed
// at all decodes to an empty Partial.
func Decode(raw string) Partial {
	q := rawQuery(raw)
	if q == "" {
		return Partial{}
	}

	values, err := url.ParseQuery(q)
	if err != nil {
		logger.Debug("Ignoring malformed list query", "query", raw, "error", err)
		return Partial{}
	}

	var p Partial
	if _, ok := values[KeyPage]; ok {
		page, err := strconv.Atoi(strings.TrimSpace(values.Get(KeyPage)))
		if err != nil || page < 1 {
			page = 1
		}
		p.Page = &page
	}
	if _, ok := values[KeySort]; ok {
		mode, _ := ParseSortMode(values.Get(KeySort))
		p.Sort = &mode
	}
	p.Search = textValue(values, KeySearch)
	p.Hashtag = textValue(values, KeyHashtag)
	p.Username = textValue(values, KeyUsername)
	return p
}

func textValue(values url.Values, key string) *string {
	if _, ok := values[key]; !ok {
		return nil
	}
	s := strings.TrimSpace(values.Get(key))
	return &s
}

// rawQuery extracts the query part from whatever form the caller has.
func rawQuery(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[i+1:]
	}
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "/") {
		// A URL or path with no query part.
		return ""
	}
	return raw
}
