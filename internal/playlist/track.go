package playlist

import (
	"strings"
	"time"
)

// Track represents a single track in a playlist.
type Track struct {
	Title    string
	Duration time.Duration
}

// NewTrack creates a track from a title and a duration in seconds.
// Negative durations are clamped to zero.
func NewTrack(title string, seconds int) Track {
	if seconds < 0 {
		seconds = 0
	}
	return Track{
		Title:    title,
		Duration: time.Duration(seconds) * time.Second,
	}
}

// IsShorterThan returns true if this track is strictly shorter than other.
func (t Track) IsShorterThan(other Track) bool {
	return t.Duration < other.Duration
}

// TitleEquals reports whether the track title matches the given title,
// ignoring case. Exact equality, not substring.
func (t Track) TitleEquals(title string) bool {
	return strings.EqualFold(t.Title, title)
}

// String returns the track in "Title (MM:SS)" form.
func (t Track) String() string {
	return t.Title + " (" + FormatDuration(t.Duration) + ")"
}
