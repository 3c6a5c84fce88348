package tasklist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/service"
)

// Preferences is client-local storage for the theme flag.
type Preferences interface {
	Dark() (bool, error)
	SetDark(dark bool) error
}

// Controller owns State and is its only writer.
type Controller struct {
	ctx     context.Context
	svc     service.Service
	prefs   Preferences
	log     *log.Logger
	onTheme func(dark bool)

	state State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the operator log that receives request failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithPreferences persists the theme flag.
func WithPreferences(p Preferences) Option {
	return func(c *Controller) { c.prefs = p }
}

// WithThemeHook is called with the new mode on Init and on every toggle.
func WithThemeHook(fn func(dark bool)) Option {
	return func(c *Controller) { c.onTheme = fn }
}

// New creates a controller. ctx bounds every request it issues.
func New(ctx context.Context, svc service.Service, opts ...Option) *Controller {
	c := &Controller{
		ctx: ctx,
		svc: svc,
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the live state. Only the goroutine calling Update may
// mutate it.
func (c *Controller) State() *State { return &c.state }

// Init applies the persisted theme and loads the first list.
func (c *Controller) Init() tea.Cmd {
	c.LoadTheme()
	return c.List(c.state.Filter)
}

// LoadTheme reads the persisted dark flag and applies it. An unreadable
// preference is logged and treated as light.
func (c *Controller) LoadTheme() {
	if c.prefs != nil {
		dark, err := c.prefs.Dark()
		if err != nil {
			c.log.Warn("failed to read theme preference", "err", err)
		}
		c.state.Dark = dark
	}
	c.applyTheme()
}

// SetInput replaces the pending title.
func (c *Controller) SetInput(s string) { c.state.Input = s }

// SetFilter switches the filter and re-lists; nil if unchanged.
func (c *Controller) SetFilter(f model.Filter) tea.Cmd {
	if f == c.state.Filter {
		return nil
	}
	return c.List(f)
}

// List fetches tasks for filter and makes it the current filter.
func (c *Controller) List(filter model.Filter) tea.Cmd {
	c.state.Filter = filter
	c.state.inFlight++
	ctx, svc := c.ctx, c.svc
	return func() tea.Msg {
		tasks, err := svc.ListTodos(ctx, filter)
		if err != nil {
			err = fmt.Errorf("fetch todos (%s): %w", filter, err)
		}
		return listedMsg{filter: filter, tasks: tasks, err: err}
	}
}

// Refresh re-lists the current filter.
func (c *Controller) Refresh() tea.Cmd { return c.refresh() }

func (c *Controller) refresh() tea.Cmd { return c.List(c.state.Filter) }

// Create submits a new pending task. Blank titles are rejected locally;
// anything else is sent as typed.
func (c *Controller) Create(title string) tea.Cmd {
	if trimmed(title) == "" {
		return nil
	}
	c.state.inFlight++
	ctx, svc := c.ctx, c.svc
	return func() tea.Msg {
		err := svc.CreateTodo(ctx, model.Draft{Title: title, Completed: false})
		if err != nil {
			err = fmt.Errorf("create task %q: %w", title, err)
		}
		return createdMsg{title: title, err: err}
	}
}

// Delete removes the task with id.
func (c *Controller) Delete(id int) tea.Cmd {
	c.state.inFlight++
	ctx, svc := c.ctx, c.svc
	return func() tea.Msg {
		err := svc.DeleteTodo(ctx, id)
		if err != nil {
			err = fmt.Errorf("delete task %d: %w", id, err)
		}
		return deletedMsg{id: id, err: err}
	}
}

// ToggleComplete flips the completed flag of a cached task. The update
// needs the full record, so ids missing from the cache are a no-op.
func (c *Controller) ToggleComplete(id int) tea.Cmd {
	task, ok := model.Find(c.state.Tasks, id)
	if !ok {
		return nil
	}
	c.state.inFlight++
	ctx, svc := c.ctx, c.svc
	d := model.Draft{Title: task.Title, Completed: !task.Completed}
	return func() tea.Msg {
		err := svc.UpdateTodo(ctx, id, d)
		if err != nil {
			err = fmt.Errorf("toggle task %d: %w", id, err)
		}
		return updatedMsg{id: id, err: err}
	}
}

// ToggleTheme flips and persists the dark flag. No request is made.
func (c *Controller) ToggleTheme() {
	c.state.Dark = !c.state.Dark
	if c.prefs != nil {
		if err := c.prefs.SetDark(c.state.Dark); err != nil {
			c.log.Error("failed to save theme preference", "dark", c.state.Dark, "err", err)
		}
	}
	c.applyTheme()
}

func (c *Controller) applyTheme() {
	if c.onTheme != nil {
		c.onTheme(c.state.Dark)
	}
}

// Update applies a result message. handled is false for messages that
// did not come from this controller.
func (c *Controller) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case listedMsg:
		c.done()
		if msg.err != nil {
			c.log.Error("failed to fetch todos", "filter", msg.filter, "err", msg.err)
			return nil, true
		}
		if msg.filter != c.state.Filter {
			c.log.Debug("dropping stale list", "filter", msg.filter, "current", c.state.Filter)
			return nil, true
		}
		c.state.Tasks = msg.tasks
		return nil, true

	case createdMsg:
		c.done()
		if msg.err != nil {
			c.log.Error("failed to create task", "title", msg.title, "err", msg.err)
			return nil, true
		}
		c.state.Input = ""
		return c.refresh(), true

	case deletedMsg:
		c.done()
		if msg.err != nil {
			c.log.Error("failed to delete task", "id", msg.id, "err", msg.err)
			return nil, true
		}
		return c.refresh(), true

	case updatedMsg:
		c.done()
		if msg.err != nil {
			c.log.Error("failed to toggle completion", "id", msg.id, "err", msg.err)
			return nil, true
		}
		return c.refresh(), true
	}
	return nil, false
}

// Drain runs cmd and every follow-up on the calling goroutine, returning
// the joined request errors. The CLI uses it to turn the asynchronous
// protocol into a blocking call.
func (c *Controller) Drain(cmd tea.Cmd) error {
	var errs []error
	for cmd != nil {
		msg := cmd()
		if r, ok := msg.(result); ok {
			if err := r.failure(); err != nil {
				errs = append(errs, err)
			}
		}
		next, handled := c.Update(msg)
		if !handled {
			break
		}
		cmd = next
	}
	return errors.Join(errs...)
}

func (c *Controller) done() {
	if c.state.inFlight > 0 {
		c.state.inFlight--
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
