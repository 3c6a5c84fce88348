package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/Makepad-fr/tada/internal/auth"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

// auth subcommands only need the config directory
func authStore(opt Options) (*auth.Store, int) {
	cfg, err := config.Load(opt.Config)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error())
		return nil, ExitUsage
	}
	if cfg.NoColor {
		ui.DisableColor()
	}
	return auth.NewStore(cfg.Dir), ExitOK
}

func doAuthLogin(opt Options) int {
	st, code := authStore(opt)
	if st == nil {
		return code
	}
	fmt.Fprint(opt.Stdout, "Paste your token: ")
	sc := bufio.NewScanner(opt.Stdin)
	if !sc.Scan() {
		err := sc.Err()
		if err == nil {
			err = fmt.Errorf("no input")
		}
		ui.Fail(opt.Stderr, "read token: "+err.Error())
		return ExitError
	}
	fmt.Fprintln(opt.Stdout)
	token := strings.TrimSpace(sc.Text())

	var expires *time.Time
	if payload, ok := auth.JWTPayload(token); ok {
		expires = auth.JWTExpiry(payload)
	}
	if err := st.Set(token, expires); err != nil {
		ui.Fail(opt.Stderr, "save token: "+err.Error())
		return ExitError
	}
	ui.OK(opt.Stdout, "logged in")
	return ExitOK
}

func doAuthLogout(opt Options) int {
	st, code := authStore(opt)
	if st == nil {
		return code
	}
	ti, _ := st.Get()
	if ti != nil && ti.Source == auth.SourceEnv {
		ui.OK(opt.Stdout, "token is provided by "+auth.EnvToken+" env var (nothing to delete)")
		return ExitOK
	}
	if err := st.Delete(); err != nil {
		ui.Fail(opt.Stderr, "logout: "+err.Error())
		return ExitError
	}
	ui.OK(opt.Stdout, "logged out")
	return ExitOK
}

func doAuthStatus(opt Options) int {
	st, code := authStore(opt)
	if st == nil {
		return code
	}
	ti, err := st.Get()
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return ExitError
	}
	if ti == nil {
		fmt.Fprintln(opt.Stdout, ui.Current().Muted.Render("not logged in"))
		fmt.Fprintln(opt.Stdout, "Run: tada auth login")
		return ExitOK
	}
	fmt.Fprintf(opt.Stdout, "source: %s\n", ti.Source)
	if ti.ExpiresAt != nil {
		fmt.Fprintf(opt.Stdout, "expires: %s\n", ti.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		fmt.Fprintln(opt.Stdout, "expires: (unknown)")
	}
	fmt.Fprintln(opt.Stdout, "env override: "+auth.EnvToken)
	return ExitOK
}

// whoami decodes a JWT locally (unsigned); opaque tokens print basic info.
func doAuthWhoAmI(opt Options) int {
	st, code := authStore(opt)
	if st == nil {
		return code
	}
	ti, _ := st.Get()
	if ti == nil {
		ui.Fail(opt.Stderr, "not logged in. Run: tada auth login")
		return ExitUsage
	}
	if p, ok := auth.JWTPayload(ti.Token); ok {
		fmt.Fprintln(opt.Stdout, "JWT payload:")
		fmt.Fprintln(opt.Stdout, p)
		return ExitOK
	}
	fmt.Fprintln(opt.Stdout, "Opaque token (cannot introspect locally).")
	fmt.Fprintln(opt.Stdout, "source:", ti.Source)
	return ExitOK
}
