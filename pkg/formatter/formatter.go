package formatter

import (
	"io"
	"sync"
	"time"

	"github.com/fatih/color"

	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/output"
)

var (
	Bold    = color.New(color.Bold)
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Warning = color.New(color.FgYellow)
	Faint   = color.New(color.Faint)
)

// Level is the severity of a toast.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "info"
}

// Toast is one transient message.
type Toast struct {
	Level   Level
	Message string
	At      time.Time
}

// Toaster shows transient messages. By default they are printed as one
// colored line each; a sink redirects them, for instance into a terminal UI.
type Toaster struct {
	mu   sync.Mutex
	w    io.Writer
	sink func(Toast)
	last *Toast
}

// NewToaster prints toasts to w, or to the output writer when w is nil.
func NewToaster(w io.Writer) *Toaster {
	return &Toaster{w: w}
}

// SetSink redirects toasts to fn. A nil fn restores printing.
func (t *Toaster) SetSink(fn func(Toast)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = fn
}

// Last returns the most recent toast.
func (t *Toaster) Last() (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last == nil {
		return Toast{}, false
	}
	return *t.last, true
}

func (t *Toaster) Success(message string) { t.show(LevelSuccess, message) }
func (t *Toaster) Info(message string)    { t.show(LevelInfo, message) }
func (t *Toaster) Warning(message string) { t.show(LevelWarning, message) }
func (t *Toaster) Error(message string)   { t.show(LevelError, message) }

// ErrorFrom shows the user-facing message for err.
func (t *Toaster) ErrorFrom(err error) {
	if err == nil {
		return
	}
	t.Error(clierrors.UserMessage(err))
}

func (t *Toaster) show(level Level, message string) {
	toast := Toast{Level: level, Message: message, At: time.Now()}

	t.mu.Lock()
	t.last = &toast
	sink := t.sink
	w := t.w
	t.mu.Unlock()

	if sink != nil {
		sink(toast)
		return
	}
	if w == nil {
		w = output.Out
	}

	switch level {
	case LevelSuccess:
		Success.Fprintln(w, "✓ "+message)
	case LevelWarning:
		Warning.Fprintln(w, "! "+message)
	case LevelError:
		Error.Fprintln(w, "✗ "+message)
	default:
		Info.Fprintln(w, message)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintTable prints rows under headers
func PrintTable(headers []string, rows [][]string) {
	output.PrintList("", headers, rows, nil)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(data map[string]interface{}) {
	output.PrintRecord("", data)
}
