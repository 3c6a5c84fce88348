package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	var ov config.Overrides
	flag.StringVar(&ov.Dir, "config-dir", "", "configuration directory (default ~/.tada)")
	flag.StringVar(&ov.BaseURL, "base-url", "", "todo API base URL")
	flag.StringVar(&ov.Timeout, "timeout", "", "per-request timeout, e.g. 5s")
	flag.StringVar(&ov.LogLevel, "log-level", "", "debug|info|warn|error")
	flag.BoolVar(&ov.NoColor, "no-color", false, "disable colors")
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, flag.Args(), cli.Options{
		Group:  *groupPending,
		Config: ov,
	})
	cancel()
	os.Exit(code)
}
