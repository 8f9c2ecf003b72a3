package main

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/formslot"
	"github.com/iw2rmb/formslot/form/catalog"
)

//go:embed catalog.toml
var defaultCatalog []byte

type options struct {
	catalogPath string
	layoutPath  string
	logPath     string
	logLevel    string
}

func (o *options) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Aliases:     []string{"c"},
			Usage:       "TOML form catalog (defaults to a built-in person form)",
			Sources:     cli.EnvVars("FORMSLOT_CATALOG"),
			Destination: &o.catalogPath,
		},
		&cli.StringFlag{
			Name:        "layout",
			Usage:       "JSON file the canvas slots are restored from and saved to",
			Sources:     cli.EnvVars("FORMSLOT_LAYOUT"),
			Destination: &o.layoutPath,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "Write logs to this file; logging is off when empty",
			Sources:     cli.EnvVars("FORMSLOT_LOG_FILE"),
			Destination: &o.logPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("FORMSLOT_LOG_LEVEL"),
			Destination: &o.logLevel,
		},
	}
}

func run(ctx context.Context, args []string) error {
	var opts options
	cmd := &cli.Command{
		Name:    "formslot-demo",
		Usage:   "Drag, configure and rebind form fields in the terminal",
		Version: formslot.Version(),
		Flags:   opts.flags(),
		Action: func(ctx context.Context, _ *cli.Command) error {
			logger, closeLog, err := newLogger(opts.logPath, opts.logLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			cat, err := loadCatalog(opts.catalogPath)
			if err != nil {
				return err
			}
			logger.Info("starting formslot demo", "version", formslot.Version(), "form_id", cat.FormID())
			return runApp(ctx, cat, opts.layoutPath, logger)
		},
	}
	return cmd.Run(ctx, args)
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, goerr.Wrap(err, "invalid log level", goerr.V("level", level))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", path))
	}
	h := clog.New(clog.WithWriter(f), clog.WithLevel(lvl))
	return slog.New(h), func() { _ = f.Close() }, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load(bytes.NewReader(defaultCatalog))
}
