package service

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/auth"
	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/output"
)

// recovery retries authenticated calls once after refreshing the session.
var recovery = auth.NewSessionRecovery()

// toaster carries the success and error messages of interactive flows.
var toaster = formatter.NewToaster(nil)

// Toaster returns the shared toaster, for callers that redirect it.
func Toaster() *formatter.Toaster { return toaster }

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// truncate shortens s to length runes, marking the cut with "..."
func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}

// formatKeyword turns a keyword as typed into its stored form
func formatKeyword(keyword string) string {
	return slug.Make(keyword)
}

// parseKeywords splits a comma separated list, dropping empties and duplicates
func parseKeywords(raw string) []string {
	seen := map[string]bool{}
	var out []string
	for _, k := range strings.Split(raw, ",") {
		k = formatKeyword(strings.TrimPrefix(strings.TrimSpace(k), "#"))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// relativeTime renders t the way the web client does ("3 hours ago")
func relativeTime(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	d := now.Sub(*t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < 45*time.Second:
		return "a few seconds ago"
	case d < 90*time.Second:
		return "a minute ago"
	case d < 45*time.Minute:
		return fmt.Sprintf("%d minutes ago", int((d+30*time.Second)/time.Minute))
	case d < 90*time.Minute:
		return "an hour ago"
	case d < 22*time.Hour:
		return fmt.Sprintf("%d hours ago", int((d+30*time.Minute)/time.Hour))
	case d < 36*time.Hour:
		return "a day ago"
	case d < 26*24*time.Hour:
		return fmt.Sprintf("%d days ago", int((d+12*time.Hour)/(24*time.Hour)))
	case d < 45*24*time.Hour:
		return "a month ago"
	case d < 320*24*time.Hour:
		return fmt.Sprintf("%d months ago", int((d+15*24*time.Hour)/(30*24*time.Hour)))
	case d < 548*24*time.Hour:
		return "a year ago"
	}
	return fmt.Sprintf("%d years ago", int(d/(365*24*time.Hour)))
}

func authorName(u *api.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.Name
}

// renderPosts prints a page of post summaries in the configured format
func renderPosts(title string, posts []api.PostSummary, page api.PageInfo) error {
	if len(posts) == 0 {
		output.PrintInfo("No posts found.")
		return nil
	}

	now := time.Now()
	offset := (max(page.Page, 1) - 1) * page.Limit
	rows := make([][]string, 0, len(posts))
	for i, p := range posts {
		tags := make([]string, 0, len(p.Keywords))
		for _, k := range p.Keywords {
			tags = append(tags, "#"+k)
		}
		rows = append(rows, []string{
			strconv.Itoa(offset + i + 1),
			truncate(p.Title, 48),
			authorName(p.Author),
			strconv.Itoa(p.Statistics.LikeCount),
			strconv.Itoa(p.Statistics.CommentCount),
			truncate(strings.Join(tags, " "), 32),
			relativeTime(p.CreatedAt, now),
			p.Slug,
		})
	}

	columns := []string{"#", "TITLE", "AUTHOR", "LIKES", "COMMENTS", "TAGS", "CREATED", "SLUG"}
	if err := output.PrintList(title, columns, rows, posts); err != nil {
		return err
	}
	if output.GetOutputFormat() != output.FormatJSON {
		pageCount := page.TotalPages()
		fmt.Fprintf(output.Out, "\nPage %d of %d (%d post%s)\n",
			max(page.Page, 1), pageCount, page.TotalRows, pluralize(page.TotalRows))
	}
	return nil
}

// readContent loads post content from a file, or stdin when path is "-"
func readContent(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
