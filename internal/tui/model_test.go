package tui

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/prefstore"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/testutil"
	"github.com/Makepad-fr/tada/internal/ui"
)

func newTestModel(t *testing.T, fs *testutil.FakeServer, opts ...Option) *Model {
	t.Helper()
	client, err := api.New(fs.URL, api.WithHTTPClient(fs.Client()))
	require.NoError(t, err)

	prefs := prefstore.New(filepath.Join(t.TempDir(), prefstore.FileName))
	ctl := tasklist.New(context.Background(), client,
		tasklist.WithPreferences(prefs),
		tasklist.WithThemeHook(ui.SetDark),
	)
	t.Cleanup(func() { ui.SetDark(false) })

	m := New(ctl, opts...)
	m.input.Cursor.SetMode(cursor.CursorStatic)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

// drive runs cmd and feeds every resulting message back into m until the
// chain ends. Spinner ticks are dropped so nothing waits on a timer.
func drive(m *Model, cmd tea.Cmd) {
	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case spinner.TickMsg:
		default:
			_, next := m.Update(msg)
			pending = append(pending, next)
		}
	}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func started(t *testing.T, fs *testutil.FakeServer, opts ...Option) *Model {
	t.Helper()
	m := newTestModel(t, fs, opts...)
	drive(m, m.Init())
	fs.ResetRequests()
	return m
}

func TestInit_RendersTasksAndCounter(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	fs.AddTask("Walk dog", true)

	m := started(t, fs)

	view := m.View()
	assert.Contains(t, view, "To-Do List")
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "Walk dog")
	assert.Contains(t, view, "1 items left")
	assert.Len(t, m.list.Items(), 2)
	assert.False(t, m.state.Loading())
}

func TestView_LoadingPlaceholder(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	m := newTestModel(t, fs)

	_ = m.Init() // request issued but not yet answered

	assert.True(t, m.state.Loading())
	assert.Contains(t, m.View(), "Loading...")
	assert.NotContains(t, m.View(), "items left")
}

func TestEnter_CreatesTaskAndClearsInput(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	m := started(t, fs)

	press(m, runes("  Walk dog "))
	assert.Equal(t, "  Walk dog ", m.state.Input)
	drive(m, press(m, enter))

	require.Len(t, fs.Tasks(), 1)
	assert.Equal(t, "  Walk dog ", fs.Tasks()[0].Title)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.state.Input)
	assert.Contains(t, m.View(), "Walk dog")
}

func TestEnter_BlankInputDoesNothing(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	m := started(t, fs)

	press(m, runes("   "))
	assert.Nil(t, press(m, enter))
	assert.Empty(t, fs.Requests())
}

func TestInput_IgnoredWhileLoading(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	m := started(t, fs)

	pending := m.ctl.Refresh()
	press(m, runes("abc"))
	assert.Empty(t, m.input.Value())
	assert.Nil(t, press(m, enter))

	drive(m, pending)
	press(m, runes("abc"))
	assert.Equal(t, "abc", m.input.Value())
}

func TestSpace_TogglesSelectedTask(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	fs.AddTask("Walk dog", false)
	m := started(t, fs)

	press(m, tab)
	press(m, down)
	drive(m, press(m, space))

	tasks := fs.Tasks()
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
	assert.Contains(t, m.View(), "1 items left")
}

func TestSpace_InInputTypesASpace(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	m := started(t, fs)

	press(m, space)
	assert.Equal(t, " ", m.input.Value())
	assert.Empty(t, fs.Requests())
}

func TestDelete_LastTaskShowsEmptyState(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	m := started(t, fs)

	press(m, tab)
	drive(m, press(m, runes("d")))

	assert.Empty(t, fs.Tasks())
	view := m.View()
	assert.Contains(t, view, "No tasks yet. Add one above!")
	assert.NotContains(t, view, "items left")
}

func TestDelete_IgnoredWhileLoading(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	m := started(t, fs)

	press(m, tab)
	pending := m.ctl.Refresh()
	assert.Nil(t, press(m, runes("d")))

	drive(m, pending)
	assert.Len(t, fs.Tasks(), 1)
	for _, req := range fs.Requests() {
		assert.Equal(t, http.MethodGet, req.Method)
	}

	drive(m, press(m, runes("d")))
	assert.Empty(t, fs.Tasks())
}

func TestFilterKeys(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	m := started(t, fs)

	press(m, tab)
	drive(m, press(m, runes("2")))

	reqs := fs.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "completed", reqs[0].Status)
	assert.Equal(t, model.FilterCompleted, m.state.Filter)
	assert.Contains(t, m.View(), "No completed tasks yet")

	drive(m, press(m, runes("f")))
	assert.Equal(t, model.FilterPending, m.state.Filter)
	assert.Contains(t, m.View(), "Buy milk")

	drive(m, press(m, runes("1")))
	assert.Equal(t, model.FilterAll, m.state.Filter)
}

func TestRefresh_FailureKeepsList(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	m := started(t, fs)

	fs.SetFail(http.MethodGet, http.StatusInternalServerError)
	press(m, tab)
	drive(m, press(m, runes("r")))

	assert.Len(t, fs.Requests(), 1)
	assert.Contains(t, m.View(), "Buy milk")
	assert.False(t, m.state.Loading())
}

func TestTheme_SwapsToggleLabel(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	m := started(t, fs)
	assert.Contains(t, m.View(), "☾")

	press(m, tab)
	press(m, runes("t"))

	assert.True(t, m.state.Dark)
	assert.True(t, ui.Current().Dark)
	assert.Contains(t, m.View(), "☀")
	assert.Empty(t, fs.Requests())
}

func TestCopy_WritesSelectedTitle(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	var copied string
	m := started(t, fs, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	press(m, tab)
	press(m, runes("y"))

	assert.Equal(t, "Buy milk", copied)
	assert.Contains(t, m.View(), "copied")
}

func TestCopy_ClipboardFailure(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	fs.AddTask("Buy milk", false)
	m := started(t, fs, WithClipboard(func(string) error { return errors.New("no xclip") }))

	press(m, tab)
	press(m, runes("y"))

	assert.Contains(t, m.View(), "clipboard unavailable")
}

func TestQuitKeys(t *testing.T) {
	fs := testutil.NewFakeServer(t)
	m := started(t, fs)

	press(m, runes("q"))
	assert.Equal(t, "q", m.input.Value(), "q types into the input")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	press(m, tab)
	cmd = press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
