package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/onesocial/cli/pkg/config"
)

func capture(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev, prevNoColor := Out, color.NoColor
	Out = buf
	color.NoColor = true
	config.Set("output.format", format)
	t.Cleanup(func() {
		Out = prev
		color.NoColor = prevNoColor
		config.Set("output.format", "text")
	})
	return buf
}

func TestGetOutputFormat(t *testing.T) {
	for _, tt := range []struct {
		set  string
		want OutputFormat
	}{
		{"json", FormatJSON},
		{"table", FormatTable},
		{"text", FormatText},
		{"yaml", FormatText},
	} {
		capture(t, tt.set)
		if got := GetOutputFormat(); got != tt.want {
			t.Errorf("format %q: got %v, want %v", tt.set, got, tt.want)
		}
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		isValid bool
	}{
		{"json", true},
		{"text", true},
		{"table", true},
		{"invalid", false},
	}

	for _, tt := range tests {
		if got := ValidateOutputFormat(tt.format); got != tt.isValid {
			t.Errorf("ValidateOutputFormat(%s): got %v, want %v", tt.format, got, tt.isValid)
		}
	}
}

func TestPrintListTable(t *testing.T) {
	buf := capture(t, "text")
	if err := PrintList("Posts", []string{"TITLE", "LIKES"}, [][]string{{"Hello", "2"}, {"Go tips", "10"}}, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Posts", "TITLE", "LIKES", "Hello", "Go tips"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintListJSONUsesRaw(t *testing.T) {
	buf := capture(t, "json")
	raw := []map[string]int{{"likes": 2}}
	if err := PrintList("Posts", []string{"TITLE"}, [][]string{{"Hello"}}, raw); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"likes": 2`) || strings.Contains(buf.String(), "Hello") {
		t.Errorf("json output should print raw data, got %s", buf.String())
	}
}

func TestPrintRecordSortedKeys(t *testing.T) {
	buf := capture(t, "text")
	PrintRecord("User", map[string]interface{}{"username": "lan", "followers": 3, "bio": "hi"})

	out := buf.String()
	b, f, u := strings.Index(out, "bio:"), strings.Index(out, "followers:"), strings.Index(out, "username:")
	if b < 0 || !(b < f && f < u) {
		t.Errorf("keys not sorted:\n%s", out)
	}
}

func TestMessages(t *testing.T) {
	buf := capture(t, "text")
	PrintSuccess("Saved %s", "post")
	PrintError("failed")
	PrintWarning("careful")

	out := buf.String()
	for _, want := range []string{"Saved post\n", "Error: failed\n", "Warning: careful\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
