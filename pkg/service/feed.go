package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/clock"
	"github.com/onesocial/cli/pkg/config"
	"github.com/onesocial/cli/pkg/credentials"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/listsync"
	"github.com/onesocial/cli/pkg/logger"
	"github.com/onesocial/cli/pkg/output"
)

// ErrReported is returned after the failure was already shown to the user.
var ErrReported = stderrors.New("error already reported")

// FeedOptions selects the list a feed command shows. Query may be a query
// string or a full web URL; the other fields override it when set.
type FeedOptions struct {
	Query    string
	Resume   bool
	Page     int
	Sort     string
	Search   string
	Hashtag  string
	Username string
}

// FeedService shows the post lists
type FeedService struct {
	registry *listsync.Registry
	lister   listsync.Lister
	clock    clock.Clock
}

// NewFeedService creates a new feed service
func NewFeedService() *FeedService {
	return &FeedService{
		registry: listsync.NewRegistry(),
		lister:   listsync.APILister{PageSize: config.GetInt("list.page_size")},
		clock:    clock.Real(),
	}
}

// Registry holds the views opened through this service.
func (fs *FeedService) Registry() *listsync.Registry { return fs.registry }

// StartQuery works out the query a view of kind opens at.
func (fs *FeedService) StartQuery(kind listsync.ViewKind, opts FeedOptions) (string, error) {
	query := opts.Query
	if query == "" && opts.Resume {
		last, err := listsync.LoadLastQuery(config.GetStateDir(), kind)
		if err != nil {
			logger.Warn("Could not read last list location", "error", err)
		}
		query = last
	}

	p := listsync.Decode(query)
	narrowed := false
	if opts.Search != "" {
		p.Search = listsync.Ptr(opts.Search)
		narrowed = true
	}
	if opts.Hashtag != "" {
		p.Hashtag = listsync.Ptr(opts.Hashtag)
		narrowed = true
	}
	if opts.Username != "" && kind != listsync.KindProfile {
		p.Username = listsync.Ptr(opts.Username)
		narrowed = true
	}
	if narrowed {
		p.Page = nil
	}
	if opts.Sort != "" {
		mode, ok := listsync.ParseSortMode(opts.Sort)
		if !ok {
			return "", clierrors.ValidationError("by", "must be all, newest or popular")
		}
		p.Sort = &mode
	}
	if opts.Page > 0 {
		p.Page = listsync.Ptr(opts.Page)
	}

	return listsync.Encode(listsync.Complete(p)), nil
}

func (fs *FeedService) checkAccess(kind listsync.ViewKind, opts FeedOptions) (listsync.Partial, error) {
	switch kind {
	case listsync.KindProfile:
		if opts.Username == "" {
			return listsync.Partial{}, clierrors.ValidationError("username", "a profile list needs a username")
		}
		return listsync.Partial{Username: listsync.Ptr(opts.Username)}, nil
	case listsync.KindSaved, listsync.KindMine, listsync.KindAdmin:
		creds, err := credentials.Load()
		if err != nil {
			return listsync.Partial{}, err
		}
		if creds == nil {
			return listsync.Partial{}, clierrors.UnauthorizedError()
		}
		if kind == listsync.KindAdmin && !creds.IsAdmin {
			return listsync.Partial{}, clierrors.ForbiddenError()
		}
	case listsync.KindHome:
	}
	return listsync.Partial{}, nil
}

// Open mounts a view of kind under its kind name. Requests that fail with
// an expired session are retried once after a refresh.
func (fs *FeedService) Open(ctx context.Context, kind listsync.ViewKind, opts FeedOptions, deps listsync.Deps) (*listsync.View, error) {
	pinned, err := fs.checkAccess(kind, opts)
	if err != nil {
		return nil, err
	}
	query, err := fs.StartQuery(kind, opts)
	if err != nil {
		return nil, err
	}

	if deps.Lister == nil {
		deps.Lister = fs.recovering()
	}
	if deps.Clock == nil {
		deps.Clock = fs.clock
	}
	if deps.Debounce == 0 {
		deps.Debounce = config.SearchDebounce()
	}
	if deps.WebBaseURL == "" {
		deps.WebBaseURL = config.GetString("web.base_url")
	}
	if deps.Notifier == nil {
		deps.Notifier = toaster
	}

	return fs.registry.Mount(ctx, listsync.ViewID(kind.String()), deps, kind, query, pinned), nil
}

func (fs *FeedService) recovering() listsync.Lister {
	return listsync.ListerFunc(func(ctx context.Context, kind listsync.ViewKind, f listsync.Filter) (*api.PostListResponse, error) {
		var resp *api.PostListResponse
		err := recovery.Do(func() error {
			var err error
			resp, err = fs.lister.ListPosts(ctx, kind, f)
			return err
		})
		return resp, err
	})
}

// Title is the heading printed above a list.
func Title(kind listsync.ViewKind, f listsync.Filter) string {
	var title string
	switch kind {
	case listsync.KindHome:
		title = "Latest posts"
	case listsync.KindProfile:
		title = "Posts by @" + f.Username
	case listsync.KindAdmin:
		title = "All posts"
	case listsync.KindSaved:
		title = "Saved posts"
	case listsync.KindMine:
		title = "My posts"
	}
	switch {
	case f.Search != "":
		title += fmt.Sprintf(" matching %q", f.Search)
	case f.Hashtag != "":
		title += " tagged #" + f.Hashtag
	case f.Username != "" && kind == listsync.KindAdmin:
		title += " by @" + f.Username
	}
	if f.Sort != listsync.SortAll {
		title += fmt.Sprintf(" (%s)", f.Sort)
	}
	return title
}

// Show fetches one page of a list, prints it with its shareable URL and
// remembers where the list was left.
func (fs *FeedService) Show(ctx context.Context, kind listsync.ViewKind, opts FeedOptions) error {
	failed := false
	notify := listsync.NotifierFunc(func(message string) {
		failed = true
		toaster.Error(message)
	})

	view, err := fs.Open(ctx, kind, opts, listsync.Deps{Notifier: notify})
	if err != nil {
		return err
	}
	defer fs.registry.Unmount(listsync.ViewID(kind.String()))
	view.Wait()

	if failed {
		return ErrReported
	}
	res, ok := view.Result()
	if !ok {
		return ErrReported
	}

	if err := renderPosts(Title(kind, res.Filter), res.Items, res.PageInfo); err != nil {
		return err
	}
	if output.GetOutputFormat() != output.FormatJSON {
		fmt.Fprintf(output.Out, "Share: %s\n", view.URL())
	}

	if err := listsync.SaveLastQuery(config.GetStateDir(), kind, view.Query()); err != nil {
		logger.Warn("Could not save list location", "error", err)
	}
	return nil
}
