package ui

import (
	"fmt"
	"io"
	"strings"
)

// ProgressBar draws done out of total as a bar width cells wide (at least
// five) followed by the percentage.
func ProgressBar(done, total, width int) string {
	width = max(width, 5)
	total = max(total, 1)
	done = min(max(done, 0), total)

	cells := done * width / total
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < cells {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	fmt.Fprintf(&b, " %3d%%", done*100/total)
	return b.String()
}

// Panel frames lines with the current theme's container.
func Panel(lines []string) string {
	return current.Container.Render(strings.Join(lines, "\n"))
}

// PrintPanel writes Panel(lines) followed by a newline.
func PrintPanel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Panel(lines))
}
