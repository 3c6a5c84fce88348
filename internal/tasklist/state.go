// Package tasklist is the task list client: UI state kept in sync with a
// remote /todos store.
//
// Every network operation returns a tea.Cmd that performs the request off the
// UI goroutine and yields exactly one result message. Controller.Update
// applies that message to State on the owning goroutine and returns the
// follow-up command; after a successful mutation that is always refresh(),
// a full re-list for the current filter. Nothing patches the task slice
// locally, so what is displayed is the server's view after the round-trip.
//
// Overlapping operations are not serialized. Their re-lists race and the
// last List response for the current filter wins.
package tasklist

import "github.com/Makepad-fr/tada/internal/model"

// State is everything the view renders.
type State struct {
	// Tasks is the last successful fetch for Filter, in server order.
	Tasks  []model.Task
	Filter model.Filter
	// Input is the pending title in the add box.
	Input string
	Dark  bool

	inFlight int
}

// Loading reports whether any request is outstanding.
func (s *State) Loading() bool { return s.inFlight > 0 }

// InFlight is the number of outstanding requests.
func (s *State) InFlight() int { return s.inFlight }

// EmptyMessage is the placeholder shown instead of the list, or "" when
// there are tasks to show.
func (s *State) EmptyMessage() string {
	if len(s.Tasks) > 0 {
		return ""
	}
	if s.Loading() {
		return "Loading..."
	}
	return s.Filter.EmptyMessage()
}

// CanSubmit mirrors the add button: enabled when idle with a non-blank input.
func (s *State) CanSubmit() bool {
	return !s.Loading() && trimmed(s.Input) != ""
}
