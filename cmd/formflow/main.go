package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/internal/config"
	"github.com/goliatone/go-formflow/internal/logging"
	"github.com/goliatone/go-formflow/pkg/renderers/tui"
	"github.com/goliatone/go-formflow/pkg/session"
)

func main() {
	configPath := flag.String("config", "", "config file (formflow.yaml in the working or user config directory when empty)")
	contract := flag.String("contract", "", "OpenAPI contract path (embedded booking contract when empty)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := formflow.NewApp(ctx, cfg,
		formflow.WithLogger(logger),
		formflow.WithContract(*contract),
	)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	err = app.Run(ctx, flag.Arg(0), flag.Args()[1:])
	switch {
	case err == nil:
	case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
		stop()
		os.Exit(130)
	case errors.Is(err, session.ErrNotAuthenticated):
		stop()
		fmt.Fprintln(os.Stderr, "Not signed in. Run: formflow signin")
		os.Exit(1)
	case errors.Is(err, formflow.ErrUnknownCommand):
		stop()
		usage()
		os.Exit(2)
	default:
		log.Fatalf("%s failed: %v", flag.Arg(0), err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: formflow [flags] <%s> [args]\n\n", strings.Join(formflow.Commands, "|"))
	fmt.Fprintln(flag.CommandLine.Output(), "  avatar takes an optional image path; it is prompted for when omitted.")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}
