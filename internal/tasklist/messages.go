package tasklist

import "github.com/Makepad-fr/tada/internal/model"

// result is implemented by every message a controller command returns.
type result interface {
	failure() error
}

type listedMsg struct {
	filter model.Filter
	tasks  []model.Task
	err    error
}

type createdMsg struct {
	title string
	err   error
}

type updatedMsg struct {
	id  int
	err error
}

type deletedMsg struct {
	id  int
	err error
}

func (m listedMsg) failure() error  { return m.err }
func (m createdMsg) failure() error { return m.err }
func (m updatedMsg) failure() error { return m.err }
func (m deletedMsg) failure() error { return m.err }
