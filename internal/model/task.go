package model

import (
	"fmt"
	"strings"
)

// Task is the domain model for a todo entry as the backend stores it.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Draft is the request body for create and update.
type Draft struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter constrains which tasks are requested from the backend.
type Filter string

const (
	FilterAll       Filter = ""
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending}

// ParseFilter accepts "all", "completed" or "pending" (case-insensitive).
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "pending", "open":
		return FilterPending, nil
	}
	return FilterAll, fmt.Errorf("unknown filter: %q (want all, completed or pending)", s)
}

// Status is the value of the status query parameter; empty for FilterAll.
func (f Filter) Status() string { return string(f) }

func (f Filter) String() string {
	if f == FilterAll {
		return "all"
	}
	return string(f)
}

// Label is the tab caption.
func (f Filter) Label() string {
	switch f {
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	}
	return "All"
}

// EmptyMessage is shown when a fetch for f returned no tasks.
func (f Filter) EmptyMessage() string {
	switch f {
	case FilterCompleted:
		return "No completed tasks yet"
	case FilterPending:
		return "No pending tasks"
	}
	return "No tasks yet. Add one above!"
}

// Next cycles all -> completed -> pending -> all.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Stats counts done and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Find returns the task with the given id from tasks.
func Find(tasks []Task, id int) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
