package listsync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onesocial/cli/pkg/clock"
	clierrors "github.com/onesocial/cli/pkg/errors"
)

type viewFixture struct {
	view   *View
	lister *countingLister
	notes  *recorder
	clock  *clock.FakeClock
	hist   *History
}

func mountView(t *testing.T, kind ViewKind, query string, pinned Partial) *viewFixture {
	t.Helper()
	fx := &viewFixture{
		lister: &countingLister{},
		notes:  &recorder{},
		clock:  clock.Fake(time.Unix(0, 0)),
		hist:   NewHistory(query),
	}
	fx.view = Mount(context.Background(), Deps{
		Lister:     fx.lister,
		Notifier:   fx.notes,
		Clock:      fx.clock,
		Debounce:   400 * time.Millisecond,
		Location:   fx.hist,
		WebBaseURL: "http://localhost:3000/",
	}, kind, query, pinned)
	t.Cleanup(fx.view.Close)
	fx.view.Wait()
	return fx
}

func TestMountFetchesInitialFilter(t *testing.T) {
	fx := mountView(t, KindHome, "?page=3&by=newest", Partial{})

	require.Len(t, fx.lister.seen(), 1)
	assert.Equal(t, Filter{Page: 3, Sort: SortNewest}, fx.lister.seen()[0])
	res, ok := fx.view.Result()
	require.True(t, ok)
	assert.Equal(t, 3, res.Filter.Page)
	assert.Equal(t, Idle, fx.view.State())
}

func TestHashtagScenario(t *testing.T) {
	fx := mountView(t, KindHome, "", Partial{})
	require.Equal(t, Filter{Page: 1, Sort: SortAll}, fx.view.Filter())
	before := len(fx.lister.seen())

	fx.view.SetHashtag("react")
	fx.view.Wait()

	assert.Equal(t, Filter{Page: 1, Sort: SortAll, Hashtag: "react"}, fx.view.Filter())
	assert.Equal(t, "hashtag=react", fx.hist.Query())
	assert.Equal(t, "http://localhost:3000/?hashtag=react", fx.view.URL())

	calls := fx.lister.seen()[before:]
	require.Len(t, calls, 1, "exactly one fetch")
	assert.Equal(t, Filter{Page: 1, Sort: SortAll, Hashtag: "react"}, calls[0])
}

func TestDebouncedSearchFetchesOnce(t *testing.T) {
	fx := mountView(t, KindHome, "?page=4", Partial{})
	before := len(fx.lister.seen())

	fx.view.SetSearch("g")
	fx.clock.Advance(100 * time.Millisecond)
	fx.view.SetSearch("go")
	fx.clock.Advance(100 * time.Millisecond)
	fx.view.SetSearch("gol")
	fx.view.Wait()
	assert.Len(t, fx.lister.seen(), before, "nothing fetched while typing")

	fx.clock.Advance(400 * time.Millisecond)
	fx.view.Wait()

	calls := fx.lister.seen()[before:]
	require.Len(t, calls, 1)
	assert.Equal(t, Filter{Page: 1, Sort: SortAll, Search: "gol"}, calls[0])
	assert.Equal(t, "search=gol", fx.view.Query())
}

func TestHashtagCancelsPendingSearch(t *testing.T) {
	fx := mountView(t, KindHome, "", Partial{})
	fx.view.SetSearch("typing")
	fx.view.SetHashtag("#go")
	fx.clock.Advance(time.Second)
	fx.view.Wait()

	assert.Equal(t, Filter{Page: 1, Sort: SortAll, Hashtag: "go"}, fx.view.Filter())
}

func TestCancelSearch(t *testing.T) {
	fx := mountView(t, KindHome, "?search=rust", Partial{})
	before := len(fx.lister.seen())

	fx.view.SetSearch("go")
	fx.view.CancelSearch()
	fx.clock.Advance(time.Second)
	fx.view.Wait()

	assert.Equal(t, "rust", fx.view.Filter().Search)
	assert.Len(t, fx.lister.seen(), before)
}

func TestNetworkErrorScenario(t *testing.T) {
	fx := mountView(t, KindHome, "", Partial{})
	res, ok := fx.view.Result()
	require.True(t, ok)
	n := len(res.Items)
	require.NotZero(t, n)

	fx.lister.setErr(networkErr{})
	fx.view.SetPage(2)
	fx.view.Wait()

	assert.Equal(t, []string{clierrors.GenericMessage}, fx.notes.all())
	res, _ = fx.view.Result()
	assert.Len(t, res.Items, n)
	assert.Equal(t, 1, res.Filter.Page)
}

func TestPaging(t *testing.T) {
	fx := mountView(t, KindHome, "", Partial{})

	fx.view.PrevPage()
	assert.Equal(t, 1, fx.view.Filter().Page)

	fx.view.NextPage()
	fx.view.Wait()
	fx.view.NextPage()
	fx.view.Wait()
	assert.Equal(t, 3, fx.view.Filter().Page)

	// pageOf reports 30 rows at 10 per page.
	fx.view.NextPage()
	assert.Equal(t, 3, fx.view.Filter().Page)

	fx.view.PrevPage()
	fx.view.Wait()
	assert.Equal(t, 2, fx.view.Filter().Page)
}

func TestNavigateAndBack(t *testing.T) {
	fx := mountView(t, KindHome, "?search=go", Partial{})

	fx.view.Navigate("?hashtag=rust")
	fx.view.Wait()
	assert.Equal(t, "rust", fx.view.Filter().Hashtag)
	assert.Equal(t, "", fx.view.Filter().Search)

	require.True(t, fx.view.Back())
	fx.view.Wait()
	assert.Equal(t, "go", fx.view.Filter().Search)
	assert.True(t, fx.view.Forward())
}

func TestProfileView(t *testing.T) {
	fx := mountView(t, KindProfile, "?page=2&username=someone", Partial{Username: Ptr("lan")})

	assert.Equal(t, Filter{Page: 2, Sort: SortAll, Username: "lan"}, fx.view.Filter())
	assert.Equal(t, "http://localhost:3000/profile/lan?page=2", fx.view.URL())
}

func TestCloseStopsEverything(t *testing.T) {
	fx := mountView(t, KindHome, "", Partial{})
	before := len(fx.lister.seen())

	fx.view.SetSearch("late")
	fx.view.Close()
	fx.clock.Advance(time.Second)
	fx.view.SetPage(5)
	fx.view.Refresh()
	fx.view.Wait()

	assert.Len(t, fx.lister.seen(), before)
	fx.view.Close()
}

func TestRegistryReplacesByID(t *testing.T) {
	reg := NewRegistry()
	deps := Deps{Lister: &countingLister{}, Notifier: &recorder{}, Clock: clock.Fake(time.Unix(0, 0))}
	ctx := context.Background()

	first := reg.Mount(ctx, "home", deps, KindHome, "", Partial{})
	reg.Mount(ctx, "saved", deps, KindSaved, "", Partial{})
	second := reg.Mount(ctx, "home", deps, KindHome, "?page=2", Partial{})
	first.Wait()
	second.Wait()

	assert.Equal(t, 2, reg.Len())
	got, ok := reg.Get("home")
	require.True(t, ok)
	assert.Same(t, second, got)

	// The replaced view is closed and no longer fetches.
	first.Refresh()
	first.Wait()
	assert.Equal(t, Stale, first.orch.Request(ctx, DefaultFilter()))

	reg.Unmount("saved")
	assert.Equal(t, 1, reg.Len())
	reg.CloseAll()
	assert.Equal(t, 0, reg.Len())
}

func TestBackToBackChangesRenderLatest(t *testing.T) {
	for i := 0; i < 100; i++ {
		fx := mountView(t, KindHome, "", Partial{})

		fx.view.SubmitSearch("a")
		fx.view.SubmitSearch("b")
		fx.view.Wait()

		res, ok := fx.view.Result()
		require.True(t, ok)
		require.Equal(t, fx.view.Filter(), res.Filter)
		require.Equal(t, "b", res.Filter.Search)
		fx.view.Close()
	}
}

func TestSortAndPageBurstRendersLatest(t *testing.T) {
	fx := mountView(t, KindHome, "", Partial{})

	fx.view.SetSort(SortNewest)
	fx.view.SetPage(2)
	fx.view.SetSort(SortPopular)
	fx.view.SetPage(3)
	fx.view.Wait()

	res, ok := fx.view.Result()
	require.True(t, ok)
	assert.Equal(t, Filter{Page: 3, Sort: SortPopular}, fx.view.Filter())
	assert.Equal(t, fx.view.Filter(), res.Filter)
	assert.Equal(t, "by=popular&page=3", fx.hist.Query())
}

func TestConcurrentChangesRenderLatest(t *testing.T) {
	for i := 0; i < 100; i++ {
		fx := mountView(t, KindHome, "", Partial{})

		concurrently(
			func() { fx.view.SetPage(2) },
			func() { fx.view.SetSort(SortNewest) },
			func() { fx.view.SubmitSearch("go") },
			func() { fx.view.Refresh() },
		)
		fx.view.Wait()

		res, ok := fx.view.Result()
		require.True(t, ok)
		require.Equal(t, fx.view.Filter(), res.Filter)
		require.Equal(t, Encode(fx.view.Filter()), fx.hist.Query())
		fx.view.Close()
	}
}

func TestOlderResponseArrivingLastIsDropped(t *testing.T) {
	lister := newGatedLister()
	v := Mount(context.Background(), Deps{
		Lister:   lister,
		Notifier: &recorder{},
		Clock:    clock.Fake(time.Unix(0, 0)),
	}, KindHome, "", Partial{})
	t.Cleanup(v.Close)
	(<-lister.calls).release <- nil
	v.Wait()

	v.SubmitSearch("a")
	v.SubmitSearch("b")
	calls := map[string]gatedCall{}
	for i := 0; i < 2; i++ {
		c := <-lister.calls
		calls[c.filter.Search] = c
	}
	require.Contains(t, calls, "a")
	require.Contains(t, calls, "b")

	calls["b"].release <- nil
	require.Eventually(t, func() bool {
		res, ok := v.Result()
		return ok && res.Filter.Search == "b"
	}, time.Second, time.Millisecond)
	calls["a"].release <- nil
	v.Wait()

	res, ok := v.Result()
	require.True(t, ok)
	assert.Equal(t, "b", res.Filter.Search)
	assert.Equal(t, v.Filter(), res.Filter)
}
