package playlist

import (
	"strings"
	"time"
)

// Playlist holds an ordered collection of tracks with a fixed capacity.
// The capacity is set at construction and never grows; tracks keep their
// insertion order, which represents playback order.
type Playlist struct {
	tracks  []Track // len is the logical size, cap is fixed at maxSize
	maxSize int
}

// New creates a new empty playlist with the given maximum capacity.
// A negative capacity is treated as zero.
func New(maxSize int) *Playlist {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Playlist{
		tracks:  make([]Track, 0, maxSize),
		maxSize: maxSize,
	}
}

// Cap returns the maximum number of tracks the playlist can hold.
func (p *Playlist) Cap() int {
	return p.maxSize
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsFull returns true if no more tracks can be added.
func (p *Playlist) IsFull() bool {
	return len(p.tracks) == p.maxSize
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Add appends the track to the end of the playlist.
// Returns false if the playlist is full.
func (p *Playlist) Add(t Track) bool {
	if p.IsFull() {
		return false
	}
	p.tracks = append(p.tracks, t)
	return true
}

// Insert places the track at the given index, shifting later tracks one
// slot toward the end. Inserting into an empty playlist, or at an index at
// or past the end, appends. Returns false if the index is negative or the
// playlist is full.
func (p *Playlist) Insert(index int, t Track) bool {
	if index < 0 || p.IsFull() {
		return false
	}
	if len(p.tracks) == 0 || index >= len(p.tracks) {
		return p.Add(t)
	}

	p.tracks = append(p.tracks, Track{})
	copy(p.tracks[index+1:], p.tracks[index:])
	p.tracks[index] = t
	return true
}

// Remove removes the track at the given index, shifting later tracks one
// slot toward the front. Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// RemoveFirst removes the first track. If the playlist is empty, does nothing.
func (p *Playlist) RemoveFirst() {
	p.Remove(0)
}

// RemoveLast removes the last track. If the playlist is empty, does nothing.
func (p *Playlist) RemoveLast() {
	if len(p.tracks) == 0 {
		return
	}
	p.tracks = p.tracks[:len(p.tracks)-1]
}

// RemoveByTitle removes the first track whose title matches, ignoring case.
// Returns false if no track matches.
func (p *Playlist) RemoveByTitle(title string) bool {
	return p.Remove(p.IndexOf(title))
}

// Extend appends every track of other, in order, to this playlist.
// If the combined size would exceed the capacity, nothing is appended and
// Extend returns false.
func (p *Playlist) Extend(other *Playlist) bool {
	if len(p.tracks)+len(other.tracks) > p.maxSize {
		return false
	}
	p.tracks = append(p.tracks, other.tracks...)
	return true
}

// Clear removes all tracks. The capacity is unchanged.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// IndexOf returns the index of the first track with the given title,
// ignoring case, or -1 if no track matches.
func (p *Playlist) IndexOf(title string) int {
	for i := range p.tracks {
		if p.tracks[i].TitleEquals(title) {
			return i
		}
	}
	return -1
}

// TotalDuration returns the summed duration of all tracks.
func (p *Playlist) TotalDuration() time.Duration {
	var total time.Duration
	for i := range p.tracks {
		total += p.tracks[i].Duration
	}
	return total
}

// ShortestTrackTitle returns the title of the shortest track.
// The second return value is false if the playlist is empty.
// Among equal durations the earliest track wins.
func (p *Playlist) ShortestTrackTitle() (string, bool) {
	if len(p.tracks) == 0 {
		return "", false
	}
	return p.tracks[p.minIndex(0)].Title, true
}

// minIndex returns the index of the shortest track in [start, Len()),
// or -1 if start is negative or past the last track. Among equal
// durations the earliest index wins.
func (p *Playlist) minIndex(start int) int {
	if start < 0 || start > len(p.tracks)-1 {
		return -1
	}

	shortest := start
	for i := start + 1; i < len(p.tracks); i++ {
		if p.tracks[i].IsShorterThan(p.tracks[shortest]) {
			shortest = i
		}
	}
	return shortest
}

// SortByDuration sorts the playlist in place by increasing duration using
// selection sort: at each position the shortest remaining track is swapped
// in. Relative order of equal-duration tracks follows the earliest-index
// tie-break at each step, so the result is deterministic but not stable.
func (p *Playlist) SortByDuration() {
	for i := range p.tracks {
		min := p.minIndex(i)
		p.tracks[i], p.tracks[min] = p.tracks[min], p.tracks[i]
	}
}

// String renders the playlist with one track per line.
// An empty playlist renders as an empty string.
func (p *Playlist) String() string {
	var b strings.Builder
	for i := range p.tracks {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.tracks[i].String())
	}
	return b.String()
}
