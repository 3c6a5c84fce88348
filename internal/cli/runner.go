package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options tune behavior from root flags.
type Options struct {
	Group  bool // ls grouped by pending/done
	Config config.Overrides

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no arguments it opens the interactive list.
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		args = []string{"ui"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return ExitOK

	case "ui":
		return doUI(ctx, opt)

	case "ls":
		return doList(ctx, a, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: tada add <title...>")
			return ExitUsage
		}
		return doAdd(ctx, strings.Join(a, " "), opt)

	case "done":
		id, code := parseID("done", a, opt)
		if code != ExitOK {
			return code
		}
		return doToggle(ctx, id, opt)

	case "rm":
		id, code := parseID("rm", a, opt)
		if code != ExitOK {
			return code
		}
		return doRemove(ctx, id, opt)

	case "theme":
		return doTheme(opt)

	case "auth":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: tada auth <login|logout|status|whoami>")
			return ExitUsage
		}
		switch a[0] {
		case "login":
			return doAuthLogin(opt)
		case "logout":
			return doAuthLogout(opt)
		case "status":
			return doAuthStatus(opt)
		case "whoami":
			return doAuthWhoAmI(opt)
		default:
			ui.Fail(opt.Stderr, "usage: tada auth <login|logout|status|whoami>")
			return ExitUsage
		}
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return ExitUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tada - a to-do list client for a /todos REST API

Usage:
  tada [flags] [subcommand] [args]

Subcommands:
  ui                 Interactive list (default)
  ls [-status s]     List tasks; s is all, completed or pending
  add <title...>     Add a pending task (title can be multiple words)
  done <id>          Toggle completion of task <id>
  rm <id>            Delete task <id>
  theme              Toggle the persisted light/dark theme
  auth <login|logout|status|whoami>   Bearer token for the API

Flags:
  -config-dir dir    Configuration directory (default ~/.tada)
  -base-url url      API base URL (default http://localhost:8000)
  -timeout d         Per-request timeout, e.g. 5s (default none)
  -log-level l       debug, info, warn or error
  -no-color          Disable colors
  -group             Group ls output by pending/done

Examples:
  tada add "Buy milk"
  tada ls -status pending
  tada done 2
  tada rm 3
`)
}

func parseID(cmd string, a []string, opt Options) (int, int) {
	if len(a) != 1 {
		ui.Fail(opt.Stderr, fmt.Sprintf("usage: tada %s <id>", cmd))
		return 0, ExitUsage
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(opt.Stderr, cmd+": not a number: "+a[0])
		return 0, ExitUsage
	}
	return n, ExitOK
}
