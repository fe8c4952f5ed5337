package browse

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/listsync"
)

// resultMsg says the view has a newer result; the model reads it from the
// view, so dropped signals lose nothing.
type resultMsg struct{}

type toastMsg formatter.Toast

type queryMsg string

type clearToastMsg struct {
	id int
}

// Events carries the callbacks of a mounted view into the program. Pass it
// as the view's Notifier and OnQuery, and as the toaster sink. Toasts and
// queries are queued in order and never dropped; result signals coalesce.
// Senders never block.
type Events struct {
	mu      sync.Mutex
	queue   []tea.Msg
	results bool
	wake    chan struct{}
}

// NewEvents creates an event queue.
func NewEvents() *Events {
	return &Events{wake: make(chan struct{}, 1)}
}

func (e *Events) send(msg tea.Msg) {
	e.mu.Lock()
	if _, ok := msg.(resultMsg); ok {
		e.results = true
	} else {
		e.queue = append(e.queue, msg)
	}
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

func (e *Events) pop() (tea.Msg, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) > 0 {
		msg := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		return msg, true
	}
	if e.results {
		e.results = false
		return resultMsg{}, true
	}
	return nil, false
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.queue)
	if e.results {
		n++
	}
	return n
}

// Error shows a failed fetch as an error toast.
func (e *Events) Error(message string) {
	e.send(toastMsg{Level: formatter.LevelError, Message: message, At: time.Now()})
}

// Toast forwards a toaster message.
func (e *Events) Toast(t formatter.Toast) {
	e.send(toastMsg(t))
}

// Query reports the address the view wrote.
func (e *Events) Query(query string) {
	e.send(queryMsg(query))
}

// Watch signals every result published to r until the returned func runs.
func (e *Events) Watch(r *listsync.Results) func() {
	return r.Subscribe(func(listsync.ListResult) { e.send(resultMsg{}) })
}

// Next waits for the next event.
func (e *Events) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			if msg, ok := e.pop(); ok {
				return msg
			}
			<-e.wake
		}
	}
}
