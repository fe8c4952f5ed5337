package service

import (
	"reflect"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		length int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer title here", 10, "a longe..."},
		{"xin chào thế giới", 10, "xin chà..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.length); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.length, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if pluralize(1) != "" || pluralize(0) != "s" || pluralize(2) != "s" {
		t.Error("unexpected plural suffix")
	}
}

func TestParseKeywords(t *testing.T) {
	got := parseKeywords(" Go, #rust, go,, Web Dev ")
	want := []string{"go", "rust", "web-dev"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if parseKeywords("") != nil {
		t.Error("empty input should give no keywords")
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	tests := []struct {
		t    *time.Time
		want string
	}{
		{nil, ""},
		{at(10 * time.Second), "a few seconds ago"},
		{at(time.Minute), "a minute ago"},
		{at(5 * time.Minute), "5 minutes ago"},
		{at(time.Hour), "an hour ago"},
		{at(3 * time.Hour), "3 hours ago"},
		{at(24 * time.Hour), "a day ago"},
		{at(4 * 24 * time.Hour), "4 days ago"},
		{at(30 * 24 * time.Hour), "a month ago"},
		{at(90 * 24 * time.Hour), "3 months ago"},
		{at(400 * 24 * time.Hour), "a year ago"},
		{at(3 * 365 * 24 * time.Hour), "3 years ago"},
		{at(-time.Hour), "a few seconds ago"},
	}
	for _, tt := range tests {
		if got := relativeTime(tt.t, now); got != tt.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
