package appstate

import (
	"time"

	"github.com/example/pixeleditor/internal/picture"
)

// CoalesceWindow groups picture changes closer together than this into a
// single undo step.
const CoalesceWindow = time.Second

// Reducer applies actions to a State.
type Reducer struct {
	// Window is the coalescing interval. Changes arriving within Window of
	// the last pushed entry replace the picture without a new entry.
	Window time.Duration
	// Limit caps len(Done). Zero keeps every entry.
	Limit int
}

// DefaultReducer coalesces with CoalesceWindow and keeps unbounded history.
var DefaultReducer = Reducer{Window: CoalesceWindow}

// Reduce applies a with DefaultReducer.
func Reduce(s State, a Action, now time.Time) State {
	return DefaultReducer.Reduce(s, a, now)
}

// Reduce returns the state after a. now is the time the action happened and
// is the only clock the reducer reads.
func (r Reducer) Reduce(s State, a Action, now time.Time) State {
	if a.Undo {
		if len(s.Done) == 0 {
			return s
		}
		next := s
		next.Picture = s.Done[0]
		next.Done = append([]*picture.Picture(nil), s.Done[1:]...)
		next.DoneAt = time.Time{}
		return next
	}
	next := s
	if a.Picture != nil && s.DoneAt.Before(now.Add(-r.Window)) {
		done := make([]*picture.Picture, 0, len(s.Done)+1)
		done = append(done, s.Picture)
		done = append(done, s.Done...)
		if r.Limit > 0 && len(done) > r.Limit {
			done = done[:r.Limit]
		}
		next.Done = done
		next.DoneAt = now
	}
	if a.Tool != nil {
		next.Tool = *a.Tool
	}
	if a.Color != nil {
		next.Color = *a.Color
	}
	if a.Picture != nil {
		next.Picture = a.Picture
	}
	if a.ResetHistory {
		next.Done = nil
		next.DoneAt = time.Time{}
	}
	return next
}
