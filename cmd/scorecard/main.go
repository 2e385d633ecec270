package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Black-And-White-Club/frolf-scorecard/app"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newCLI(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "scorecard",
		Usage:     "disc golf scorecard",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"SCORECARD_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newPlayCommand(),
			newServeCommand(),
			newGamesCommand(),
			newMigrateCommand(),
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := observability.NewLogger(c.App.ErrWriter, cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	return cfg, logger, nil
}

func loadApp(c *cli.Context) (*app.App, error) {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return app.NewApp(c.Context, cfg, logger)
}

// runInBackground starts the event router and returns a func that stops it and waits.
func runInBackground(ctx context.Context, a *app.App) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.Run(ctx); err != nil {
			a.Logger.Error("Event router stopped", "error", err)
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

func newPlayCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "score a round in the terminal",
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := app.WaitForShutdown(c.Context)
			defer stop()
			stopRouter := runInBackground(ctx, a)
			defer stopRouter()

			err = a.Modules.RoundModule.Terminal(c.App.Reader, c.App.Writer).Run(ctx)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the scorecard HTTP API",
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := app.WaitForShutdown(c.Context)
			defer stop()
			stopRouter := runInBackground(ctx, a)
			defer stopRouter()

			return a.Serve(ctx)
		},
	}
}
