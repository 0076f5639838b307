package playlist

// History maintains a bounded history of track list states for undo/redo.
type History struct {
	states    [][]Track
	current   int // index of current state (-1 = before any state)
	maxStates int
}

// NewHistory creates a new history holding at most maxStates snapshots.
func NewHistory(maxStates int) *History {
	if maxStates < 1 {
		maxStates = 1
	}
	return &History{
		states:    make([][]Track, 0, maxStates),
		current:   -1,
		maxStates: maxStates,
	}
}

// Push saves a snapshot of the track list.
// Clears any redo states and trims the oldest states when over the limit.
func (h *History) Push(tracks []Track) {
	snapshot := make([]Track, len(tracks))
	copy(snapshot, tracks)

	// Drop redo states (everything after current)
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, snapshot)
	h.current = len(h.states) - 1

	if len(h.states) > h.maxStates {
		excess := len(h.states) - h.maxStates
		h.states = h.states[excess:]
		h.current -= excess
	}
}

// Undo returns the previous track list state.
// Returns nil and false if nothing to undo.
func (h *History) Undo() ([]Track, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.snapshot(), true
}

// Redo returns the next track list state.
// Returns nil and false if nothing to redo.
func (h *History) Redo() ([]Track, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.snapshot(), true
}

// CanUndo returns true if there is a previous state to undo to.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a next state to redo to.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// snapshot returns a copy of the current state so callers can't mutate
// stored history.
func (h *History) snapshot() []Track {
	s := make([]Track, len(h.states[h.current]))
	copy(s, h.states[h.current])
	return s
}
