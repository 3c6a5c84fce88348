package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor overrides terminal color detection with plain text.
func DisableColor() { lipgloss.SetColorProfile(termenv.Ascii) }

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, current.Success.Render("✔ "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render("✖ "+msg)) }
