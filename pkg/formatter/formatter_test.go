package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/listsync"
)

// Toaster is the notification channel for list fetches.
var _ listsync.Notifier = (*Toaster)(nil)

func noColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestToasterPrints(t *testing.T) {
	noColor(t)
	buf := &bytes.Buffer{}
	toaster := NewToaster(buf)

	toaster.Success("Post saved")
	toaster.Error("Could not load posts")
	toaster.Info("3 posts")

	out := buf.String()
	for _, want := range []string{"✓ Post saved\n", "✗ Could not load posts\n", "3 posts\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	last, ok := toaster.Last()
	if !ok || last.Level != LevelInfo || last.Message != "3 posts" {
		t.Errorf("unexpected last toast %+v", last)
	}
}

func TestToasterSink(t *testing.T) {
	buf := &bytes.Buffer{}
	toaster := NewToaster(buf)

	var got []Toast
	toaster.SetSink(func(t Toast) { got = append(got, t) })
	toaster.Warning("slow down")

	if buf.Len() != 0 {
		t.Errorf("sink should replace printing, got %q", buf.String())
	}
	if len(got) != 1 || got[0].Level != LevelWarning {
		t.Errorf("unexpected toasts %+v", got)
	}

	toaster.SetSink(nil)
	toaster.Info("back")
	if !strings.Contains(buf.String(), "back") {
		t.Error("printing should resume after clearing the sink")
	}
}

func TestToasterErrorFrom(t *testing.T) {
	noColor(t)
	buf := &bytes.Buffer{}
	toaster := NewToaster(buf)

	toaster.ErrorFrom(nil)
	if buf.Len() != 0 {
		t.Error("nil error should not toast")
	}

	toaster.ErrorFrom(errors.New("dial tcp: connection refused"))
	if !strings.Contains(buf.String(), clierrors.GenericMessage) {
		t.Errorf("expected generic message, got %q", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	if LevelError.String() != "error" || LevelInfo.String() != "info" {
		t.Error("unexpected level names")
	}
}
