// Package tui is the interactive front end: a Bubble Tea program that renders
// tasklist.State and turns key presses into controller operations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	inputLimit = 200
	// rows used by everything but the list: header, input, tabs, footer,
	// help, blank separators and the panel border
	chromeHeight = 12
	minListRows  = 3
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea model for the task list.
type Model struct {
	ctl   *tasklist.Controller
	state *tasklist.State

	list    list.Model
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	focus    focus
	spinning bool
	notice   string

	copy func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer used by the copy key.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copy = fn }
}

// New builds the model around ctl. Call Init (or Run) to load tasks.
func New(ctl *tasklist.Controller, opts ...Option) *Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = inputLimit
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctl:     ctl,
		state:   ctl.State(),
		list:    l,
		input:   ti,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeys(),
		focus:   focusInput,
		copy:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the program on the alternate screen and blocks until quit or
// until ctx is cancelled.
func Run(ctx context.Context, ctl *tasklist.Controller, opts ...Option) error {
	p := tea.NewProgram(New(ctl, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.track(m.ctl.Init()), textinput.Blink)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.ctl.Update(msg); ok {
		m.sync()
		return m, m.track(cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		m.notice = ""
		if m.focus == focusInput {
			return m, m.updateInput(msg)
		}
		return m, m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.setFocus(focusList)
		return nil
	case key.Matches(msg, m.keys.Submit):
		if !m.state.CanSubmit() {
			return nil
		}
		return m.track(m.ctl.Create(m.state.Input))
	}

	// the add box is disabled while a request is out
	if m.state.Loading() {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctl.SetInput(m.input.Value())
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.setFocus(focusInput)
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Theme):
		m.ctl.ToggleTheme()
		return nil
	case key.Matches(msg, m.keys.Refresh):
		return m.track(m.ctl.Refresh())
	case key.Matches(msg, m.keys.All):
		return m.track(m.ctl.SetFilter(model.FilterAll))
	case key.Matches(msg, m.keys.Completed):
		return m.track(m.ctl.SetFilter(model.FilterCompleted))
	case key.Matches(msg, m.keys.Pending):
		return m.track(m.ctl.SetFilter(model.FilterPending))
	case key.Matches(msg, m.keys.Cycle):
		return m.track(m.ctl.SetFilter(m.state.Filter.Next()))
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			return m.track(m.ctl.ToggleComplete(t.ID))
		}
		return nil
	case key.Matches(msg, m.keys.Delete):
		if m.state.Loading() {
			return nil
		}
		if t, ok := m.selected(); ok {
			return m.track(m.ctl.Delete(t.ID))
		}
		return nil
	case key.Matches(msg, m.keys.Copy):
		if t, ok := m.selected(); ok {
			m.copyTitle(t.Title)
		}
		return nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) copyTitle(title string) {
	if err := m.copy(title); err != nil {
		m.notice = ui.Current().Error.Render("clipboard unavailable")
		return
	}
	m.notice = ui.Current().Success.Render("copied")
}

// track starts the spinner when cmd put a request in flight.
func (m *Model) track(cmd tea.Cmd) tea.Cmd {
	if cmd == nil || !m.state.Loading() || m.spinning {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// sync copies controller state into the widgets.
func (m *Model) sync() {
	m.list.SetItems(toItems(m.state.Tasks))
	if n := len(m.state.Tasks); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	if m.input.Value() != m.state.Input {
		m.input.SetValue(m.state.Input)
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m *Model) resize(w, h int) {
	m.help.Width = w
	m.input.Width = max(w-8, 10)
	m.list.SetSize(max(w-4, 10), max(h-chromeHeight, minListRows))
}

func (m *Model) View() string {
	th := ui.Current()
	st := m.state

	lines := []string{
		ui.Header(st.Tasks) + "  " + th.Accent.Render(th.ToggleLabel),
		"",
		m.input.View(),
		"",
		ui.FilterTabs(st.Filter),
		"",
	}

	if empty := st.EmptyMessage(); empty != "" {
		if st.Loading() {
			empty = m.spinner.View() + " " + empty
		}
		lines = append(lines, th.Muted.Render(empty))
	} else {
		lines = append(lines, m.list.View())
	}

	var footer []string
	if c := ui.Counter(st.Tasks); c != "" {
		footer = append(footer, c)
	}
	if st.Loading() && len(st.Tasks) > 0 {
		footer = append(footer, m.spinner.View())
	}
	if m.notice != "" {
		footer = append(footer, m.notice)
	}
	lines = append(lines, "", strings.Join(footer, "  "), th.Help.Render(m.help.View(m.keys)))
	return ui.Panel(lines)
}
