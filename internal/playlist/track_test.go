package playlist

import (
	"testing"
	"time"
)

func TestNewTrack(t *testing.T) {
	track := NewTrack("Imagine", 183)

	if track.Title != "Imagine" {
		t.Errorf("Title = %q, want Imagine", track.Title)
	}
	if track.Duration != 183*time.Second {
		t.Errorf("Duration = %v, want 183s", track.Duration)
	}
}

func TestNewTrack_NegativeDuration(t *testing.T) {
	track := NewTrack("Broken", -10)

	if track.Duration != 0 {
		t.Errorf("Duration = %v, want 0 (negative clamped)", track.Duration)
	}
}

func TestTrack_IsShorterThan(t *testing.T) {
	short := NewTrack("short", 60)
	long := NewTrack("long", 120)
	same := NewTrack("same", 60)

	if !short.IsShorterThan(long) {
		t.Error("60s should be shorter than 120s")
	}
	if long.IsShorterThan(short) {
		t.Error("120s should not be shorter than 60s")
	}
	if short.IsShorterThan(same) {
		t.Error("equal durations: neither is shorter")
	}
}

func TestTrack_TitleEquals(t *testing.T) {
	track := NewTrack("Imagine", 183)

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"same case", "Imagine", true},
		{"lower case", "imagine", true},
		{"upper case", "IMAGINE", true},
		{"trailing space", "IMAGINE ", false},
		{"substring", "Imagin", false},
		{"different title", "Help", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := track.TitleEquals(tt.title); got != tt.want {
				t.Errorf("TitleEquals(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestTrack_String(t *testing.T) {
	track := NewTrack("Help", 139)

	if got := track.String(); got != "Help (02:19)" {
		t.Errorf("String() = %q, want %q", got, "Help (02:19)")
	}
}
