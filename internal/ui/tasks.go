package ui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

const maxTitle = 80

// TaskLine renders "☐ title" or a struck-through "☑ title".
func TaskLine(t model.Task) string {
	title := t.Title
	if len([]rune(title)) > maxTitle {
		title = string([]rune(title)[:maxTitle-3]) + "..."
	}
	if t.Completed {
		return current.Success.Render(current.BoxChecked) + " " + current.Done.Render(title)
	}
	return current.Muted.Render(current.BoxUnchecked) + " " + title
}

// FilterTabs renders the three filter captions, highlighting active.
func FilterTabs(active model.Filter) string {
	parts := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == active {
			parts = append(parts, current.ActiveTab.Render(label))
		} else {
			parts = append(parts, current.Tab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// Counter is the "N items left" footer; empty when there are no tasks.
func Counter(tasks []model.Task) string {
	if len(tasks) == 0 {
		return ""
	}
	_, pending := model.Stats(tasks)
	return current.Muted.Render(fmt.Sprintf("%d items left", pending))
}

// Header renders the title with counts, as the list view shows it.
func Header(tasks []model.Task) string {
	done, pending := model.Stats(tasks)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render("To-Do List"),
		current.Success.Render("✔"), done,
		current.Pending.Render("•"), pending,
		current.Accent.Render("Total"), len(tasks),
	)
}
