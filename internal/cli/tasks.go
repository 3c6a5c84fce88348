package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

func doUI(ctx context.Context, opt Options) int {
	e, code := setup(opt, true)
	if e == nil {
		return code
	}
	defer e.Close()

	ctl, err := e.controller(ctx)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return ExitError
	}
	if err := tui.Run(ctx, ctl); err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return ExitError
	}
	return ExitOK
}

// withController runs fn against a controller that has loaded the theme.
func withController(ctx context.Context, opt Options, fn func(*tasklist.Controller) int) int {
	e, code := setup(opt, false)
	if e == nil {
		return code
	}
	defer e.Close()

	ctl, err := e.controller(ctx)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return ExitError
	}
	ctl.LoadTheme()
	return fn(ctl)
}

func doList(ctx context.Context, args []string, opt Options) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(opt.Stderr)
	status := fs.String("status", "all", "all, completed or pending")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() > 0 {
		ui.Fail(opt.Stderr, "usage: tada ls [-status all|completed|pending]")
		return ExitUsage
	}
	filter, err := model.ParseFilter(*status)
	if err != nil {
		ui.Fail(opt.Stderr, "ls: "+err.Error())
		return ExitUsage
	}

	return withController(ctx, opt, func(ctl *tasklist.Controller) int {
		if err := ctl.Drain(ctl.List(filter)); err != nil {
			return requestFailed(opt, "ls", err)
		}
		ui.PrintPanel(opt.Stdout, listLines(ctl.State(), opt.Group))
		return ExitOK
	})
}

func doAdd(ctx context.Context, title string, opt Options) int {
	return withController(ctx, opt, func(ctl *tasklist.Controller) int {
		ctl.SetInput(title)
		cmd := ctl.Create(title)
		if cmd == nil {
			ui.Fail(opt.Stderr, "add: empty title")
			return ExitUsage
		}
		if err := ctl.Drain(cmd); err != nil {
			return requestFailed(opt, "add", err)
		}
		ui.OK(opt.Stdout, "added")
		return ExitOK
	})
}

func doToggle(ctx context.Context, id int, opt Options) int {
	return withController(ctx, opt, func(ctl *tasklist.Controller) int {
		// completion is sent as the full record, so the task must be cached
		if err := ctl.Drain(ctl.List(model.FilterAll)); err != nil {
			return requestFailed(opt, "done", err)
		}
		cmd := ctl.ToggleComplete(id)
		if cmd == nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("no task with id %d", id))
			fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: run `tada ls` to see valid ids"))
			return ExitUsage
		}
		if err := ctl.Drain(cmd); err != nil {
			return requestFailed(opt, "done", err)
		}
		if t, ok := model.Find(ctl.State().Tasks, id); ok && t.Completed {
			ui.OK(opt.Stdout, "completed")
		} else {
			ui.OK(opt.Stdout, "reopened")
		}
		return ExitOK
	})
}

func doRemove(ctx context.Context, id int, opt Options) int {
	return withController(ctx, opt, func(ctl *tasklist.Controller) int {
		if err := ctl.Drain(ctl.Delete(id)); err != nil {
			return requestFailed(opt, "rm", err)
		}
		ui.OK(opt.Stdout, "removed")
		return ExitOK
	})
}

func doTheme(opt Options) int {
	// no request is made, the context only satisfies the controller
	return withController(context.Background(), opt, func(ctl *tasklist.Controller) int {
		ctl.ToggleTheme()
		if ctl.State().Dark {
			ui.OK(opt.Stdout, "dark theme")
		} else {
			ui.OK(opt.Stdout, "light theme")
		}
		return ExitOK
	})
}
