package cli

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/ui"
)

const progressWidth = 28

// listLines is the ls panel: header, progress, active filter, tasks, footer.
// A filtered list is all done or all pending, so progress is only drawn
// for the full list.
func listLines(st *tasklist.State, group bool) []string {
	th := ui.Current()

	lines := []string{ui.Header(st.Tasks)}
	if st.Filter == model.FilterAll {
		done, pending := model.Stats(st.Tasks)
		lines = append(lines, th.Muted.Render(ui.ProgressBar(done, done+pending, progressWidth)))
	}
	lines = append(lines, ui.FilterTabs(st.Filter), "")
	if msg := st.EmptyMessage(); msg != "" {
		lines = append(lines, th.Muted.Render(msg))
	} else if group {
		lines = append(lines, groupLines(st.Tasks)...)
	} else {
		lines = append(lines, flatLines(st.Tasks)...)
	}
	lines = append(lines, "")
	if c := ui.Counter(st.Tasks); c != "" {
		lines = append(lines, c)
	}
	lines = append(lines, th.Muted.Render("Tip: add with `tada add \"Buy milk\"`"))
	return lines
}

func flatLines(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		id := ui.Current().Muted.Render(fmt.Sprintf("%4d", t.ID))
		out = append(out, id+" "+ui.TaskLine(t))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	th := ui.Current()
	section := func(title string, ts []model.Task) []string {
		lines := []string{th.Accent.Render(title)}
		if len(ts) == 0 {
			return append(lines, th.Muted.Render("(none)"))
		}
		return append(lines, flatLines(ts)...)
	}

	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
