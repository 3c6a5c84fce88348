package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/auth"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store/prefstore"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/ui"
)

// env is what every subcommand needs once flags are parsed.
type env struct {
	cfg    *config.Config
	log    *log.Logger
	closer io.Closer
}

func (e *env) Close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

// setup loads config and opens the operator log. toFile is set for the TUI,
// which owns the terminal.
func setup(opt Options, toFile bool) (*env, int) {
	cfg, err := config.Load(opt.Config)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error())
		return nil, ExitUsage
	}
	if cfg.NoColor {
		ui.DisableColor()
	}

	lo := logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Prefix: config.AppName}
	e := &env{cfg: cfg}
	if toFile {
		l, c, err := logging.OpenFile(cfg.LogFile, lo)
		if err != nil {
			ui.Fail(opt.Stderr, "log: "+err.Error())
			return nil, ExitError
		}
		e.log, e.closer = l, c
	} else {
		e.log = logging.New(opt.Stderr, lo)
	}
	return e, ExitOK
}

// controller wires the api client, preferences and theme for cfg.
func (e *env) controller(ctx context.Context) (*tasklist.Controller, error) {
	apiOpts := []api.Option{api.WithTimeout(e.cfg.Timeout), api.WithLogger(e.log)}
	ts, err := auth.NewStore(e.cfg.Dir).TokenSource()
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}
	if ts != nil {
		apiOpts = append(apiOpts, api.WithTokenSource(ts))
	}
	client, err := api.New(e.cfg.BaseURL, apiOpts...)
	if err != nil {
		return nil, err
	}
	return tasklist.New(ctx, client,
		tasklist.WithLogger(e.log),
		tasklist.WithPreferences(prefstore.New(e.cfg.PrefsFile)),
		tasklist.WithThemeHook(ui.SetDark),
	), nil
}

// requestFailed reports err and returns the exit code for it.
func requestFailed(opt Options, what string, err error) int {
	ui.Fail(opt.Stderr, what+": "+err.Error())
	if errors.Is(err, api.ErrUnauthorized) {
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: set "+auth.EnvToken+" or run `tada auth login`"))
	}
	return ExitError
}
