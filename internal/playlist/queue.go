package playlist

import "time"

// Queue wraps a bounded Playlist with playback state.
type Queue struct {
	playlist     *Playlist
	currentIndex int // -1 if nothing playing
}

// NewQueue creates a new empty playing queue with the given capacity.
func NewQueue(maxSize int) *Queue {
	return &Queue{
		playlist:     New(maxSize),
		currentIndex: -1,
	}
}

// Current returns the currently playing track, or nil if none.
func (q *Queue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the index of the currently playing track (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.currentIndex
}

// Next advances to the next track and returns it.
// Returns nil if there is no next track.
func (q *Queue) Next() *Track {
	if !q.HasNext() {
		return nil
	}
	q.currentIndex++
	return q.Current()
}

// HasNext returns true if there's a track after the current one.
func (q *Queue) HasNext() bool {
	return q.currentIndex < q.playlist.Len()-1
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *Queue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends tracks to the queue without changing playback.
// If the batch would exceed the queue capacity, nothing is added and
// Add returns false.
func (q *Queue) Add(tracks ...Track) bool {
	if q.playlist.Len()+len(tracks) > q.playlist.Cap() {
		return false
	}
	for _, t := range tracks {
		q.playlist.Add(t)
	}
	return true
}

// AddAndPlay appends tracks and jumps to the first added track.
// Returns the track to play, or nil if no tracks were given or the
// batch did not fit.
func (q *Queue) AddAndPlay(tracks ...Track) *Track {
	if len(tracks) == 0 {
		return nil
	}
	insertIndex := q.playlist.Len()
	if !q.Add(tracks...) {
		return nil
	}
	q.currentIndex = insertIndex
	return q.Current()
}

// Replace clears the queue, adds tracks, and sets index to 0.
// Returns the first track to play. If the tracks do not fit within the
// queue capacity, the queue is left unchanged and Replace returns nil.
func (q *Queue) Replace(tracks ...Track) *Track {
	if len(tracks) > q.playlist.Cap() {
		return nil
	}
	q.playlist.Clear()
	q.currentIndex = -1
	if len(tracks) == 0 {
		return nil
	}
	q.Add(tracks...)
	q.currentIndex = 0
	return q.Current()
}

// Insert places a track at the given index without changing the playing
// track: the cursor shifts along with the tracks behind it.
// Returns false if the index is negative or the queue is full.
func (q *Queue) Insert(index int, t Track) bool {
	if !q.playlist.Insert(index, t) {
		return false
	}
	if q.currentIndex >= 0 && index <= q.currentIndex {
		q.currentIndex++
	}
	return true
}

// IndexOf returns the index of the first track with the given title,
// ignoring case, or -1 if no track matches.
func (q *Queue) IndexOf(title string) int {
	return q.playlist.IndexOf(title)
}

// RemoveByTitle removes the first track whose title matches, ignoring case.
// Returns false if no track matches.
func (q *Queue) RemoveByTitle(title string) bool {
	return q.RemoveAt(q.IndexOf(title))
}

// ShortestTrackTitle returns the title of the shortest queued track.
// The second return value is false if the queue is empty.
func (q *Queue) ShortestTrackTitle() (string, bool) {
	return q.playlist.ShortestTrackTitle()
}

// RemoveAt removes the track at the given index.
// Adjusts currentIndex if necessary.
func (q *Queue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}

	// Adjust current index after removal
	if q.currentIndex > index {
		q.currentIndex--
	} else if q.currentIndex == index {
		// Removed current track - stay at same index (now points to next)
		// If we're past the end, clamp
		if q.currentIndex >= q.playlist.Len() {
			q.currentIndex = q.playlist.Len() - 1
		}
	}

	return true
}

// SortByDuration sorts the queue by increasing duration.
// The cursor follows the track that was playing; with duplicate tracks it
// lands on the first equal one.
func (q *Queue) SortByDuration() {
	current := q.Current()
	var playing Track
	if current != nil {
		playing = *current
	}

	q.playlist.SortByDuration()

	if current == nil {
		return
	}
	for i, t := range q.playlist.tracks {
		if t == playing {
			q.currentIndex = i
			return
		}
	}
}

// Clear removes all tracks and resets playback.
func (q *Queue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
}

// Tracks returns all tracks in the queue.
func (q *Queue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Track returns the track at the given index, or nil if out of bounds.
func (q *Queue) Track(index int) *Track {
	return q.playlist.Track(index)
}

// TotalDuration returns the summed duration of all queued tracks.
func (q *Queue) TotalDuration() time.Duration {
	return q.playlist.TotalDuration()
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return q.playlist.Len()
}

// Cap returns the maximum number of tracks the queue can hold.
func (q *Queue) Cap() int {
	return q.playlist.Cap()
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// IsFull returns true if the queue is at capacity.
func (q *Queue) IsFull() bool {
	return q.playlist.IsFull()
}
