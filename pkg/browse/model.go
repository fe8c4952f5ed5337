// Package browse is the interactive terminal list browser. It drives a
// mounted listsync.View from key presses and redraws from the view's
// results, so the address bar, history and fetch ordering behave exactly
// as they do for the one-shot feed commands.
package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/listsync"
)

const toastTTL = 4 * time.Second

type inputMode int

const (
	modeList inputMode = iota
	modeSearch
	modeHashtag
	modeUsername
)

// Model is the bubbletea model of the browser.
type Model struct {
	view    *listsync.View
	events  *Events
	keys    keyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	mode    inputMode
	cursor  int
	width   int
	query   string
	toast   *formatter.Toast
	toastID int
	chosen  string
}

// New creates a browser over view. events must be the queue the view was
// mounted with.
func New(view *listsync.View, events *Events) Model {
	input := textinput.New()
	input.CharLimit = 100

	return Model{
		view:    view,
		events:  events,
		keys:    defaultKeys(),
		help:    help.New(),
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		query:   view.Query(),
	}
}

// Chosen is the slug of the post picked with enter, if any.
func (m Model) Chosen() string { return m.chosen }

// Query is the address the view last wrote.
func (m Model) Query() string { return m.query }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.events.Next(), m.spinner.Tick)
}

func (m Model) items() []api.PostSummary {
	res, ok := m.view.Result()
	if !ok {
		return nil
	}
	return res.Items
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		if n := len(m.items()); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}
		return m, m.events.Next()

	case queryMsg:
		m.query = string(msg)
		return m, m.events.Next()

	case toastMsg:
		t := formatter.Toast(msg)
		m.toast = &t
		m.toastID++
		id := m.toastID
		return m, tea.Batch(m.events.Next(), tea.Tick(toastTTL, func(time.Time) tea.Msg {
			return clearToastMsg{id: id}
		}))

	case clearToastMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode != modeList {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := m.view.Kind()
	f := m.view.Filter()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if items := m.items(); m.cursor < len(items) {
			m.chosen = items[m.cursor].Slug
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Search):
		if kind.Allows(listsync.KeySearch) {
			cmd := m.startInput(modeSearch, "search: ", f.Search)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Hashtag):
		if kind.Allows(listsync.KeyHashtag) {
			cmd := m.startInput(modeHashtag, "#", f.Hashtag)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Username):
		if kind.Allows(listsync.KeyUsername) {
			cmd := m.startInput(modeUsername, "@", f.Username)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Sort):
		m.view.SetSort(f.Sort.Next())
	case key.Matches(msg, m.keys.Next):
		if m.view.NextPage().Page != f.Page {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Prev):
		if m.view.PrevPage().Page != f.Page {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Back):
		m.view.Back()
	case key.Matches(msg, m.keys.Forward):
		m.view.Forward()
	case key.Matches(msg, m.keys.Refresh):
		m.view.Refresh()
	case key.Matches(msg, m.keys.Clear):
		m.view.Navigate("")
		m.cursor = 0
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) startInput(mode inputMode, prompt, value string) tea.Cmd {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeSearch {
			m.view.CancelSearch()
		}
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		switch m.mode {
		case modeSearch:
			m.view.SubmitSearch(value)
		case modeHashtag:
			m.view.SetHashtag(value)
		case modeUsername:
			m.view.SetUsername(strings.TrimPrefix(strings.TrimSpace(value), "@"))
		case modeList:
		}
		m.mode = modeList
		m.cursor = 0
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch && m.input.Value() != before {
		m.view.SetSearch(m.input.Value())
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	res, ok := m.view.Result()
	switch {
	case !ok:
		b.WriteString(faintStyle.Render("Loading..."))
		b.WriteString("\n")
	case len(res.Items) == 0:
		b.WriteString(faintStyle.Render("No posts found."))
		b.WriteString("\n")
	default:
		for i, p := range res.Items {
			b.WriteString(m.row(i, p))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(fmt.Sprintf("Page %d of %d · %d posts",
			max(res.PageInfo.Page, 1), res.PageInfo.TotalPages(), res.PageInfo.TotalRows)))
		b.WriteString("\n")
	}

	b.WriteString(urlStyle.Render(m.view.URL()))
	b.WriteString("\n")

	if m.toast != nil {
		b.WriteString(toastStyles[m.toast.Level].Render(m.toast.Message))
		b.WriteString("\n")
	}
	if m.mode != modeList {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	f := m.view.Filter()
	parts := []string{titleStyle.Render(kindTitle(m.view.Kind(), f))}
	if f.Search != "" {
		parts = append(parts, chipStyle.Render("search: "+f.Search))
	}
	if f.Hashtag != "" {
		parts = append(parts, chipStyle.Render("#"+f.Hashtag))
	}
	if f.Username != "" && m.view.Kind() != listsync.KindProfile {
		parts = append(parts, chipStyle.Render("@"+f.Username))
	}
	parts = append(parts, sortStyle.Render("sort: "+string(f.Sort)))
	if m.view.State() == listsync.Fetching {
		parts = append(parts, m.spinner.View())
	}
	return strings.Join(parts, " ")
}

func (m Model) row(i int, p api.PostSummary) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	author := ""
	if p.Author != nil && p.Author.Username != "" {
		author = "@" + p.Author.Username
	}
	stats := fmt.Sprintf("♥ %d  💬 %d", p.Statistics.LikeCount, p.Statistics.CommentCount)
	title := truncate(p.Title, max(width-len([]rune(author))-len([]rune(stats))-8, 10))

	if i == m.cursor {
		return selectedStyle.Render("> "+title) + "  " + authorStyle.Render(author) + "  " + faintStyle.Render(stats)
	}
	return "  " + title + "  " + authorStyle.Render(author) + "  " + faintStyle.Render(stats)
}

func kindTitle(kind listsync.ViewKind, f listsync.Filter) string {
	switch kind {
	case listsync.KindProfile:
		return "@" + f.Username
	case listsync.KindAdmin:
		return "All posts"
	case listsync.KindSaved:
		return "Saved"
	case listsync.KindMine:
		return "My posts"
	case listsync.KindHome:
	}
	return "Latest"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
