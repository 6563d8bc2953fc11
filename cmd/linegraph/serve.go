package main

import (
	"fmt"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"linegraph/clock"
	"linegraph/config"
	"linegraph/drivers"
	"linegraph/events"
	"linegraph/lesson"
	"linegraph/logging"
	"linegraph/store"
	"linegraph/web/handlers"
)

func serveCmd(flags *config.Flags, serialFlags *config.SerialFlags, replayFlags *config.ReplayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lesson over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), logging.Config{Level: flags.LogLevel, Format: flags.LogFormat})
			if err != nil {
				return err
			}
			catalog, err := store.Default()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
			defer stop()

			hub := events.NewHub()
			registry := lesson.NewRegistry(catalog, clock.Real{}, hub, logger)
			defer registry.Close()

			// Create the requested drivers
			var inputs []drivers.Driver
			if serialFlags.SerialPort != "" {
				inputs = append(inputs, drivers.NewClicker(serialFlags, registry.Pin(serialFlags.Session), logger))
			}
			if replayFlags.Path != "" {
				inputs = append(inputs, drivers.NewReplayer(replayFlags, registry.Pin(replayFlags.Session), logger))
			}
			for _, driver := range inputs {
				if err := driver.Init(); err != nil {
					return fmt.Errorf("couldn't init driver: %w", err)
				}
			}

			ui, err := handlers.NewLesson(registry, logger)
			if err != nil {
				return fmt.Errorf("couldn't create lesson ui: %w", err)
			}
			server, err := handlers.NewServer(ui, hub, logger)
			if err != nil {
				return fmt.Errorf("couldn't create server: %w", err)
			}

			g, ctx := errgroup.WithContext(ctx)
			for _, driver := range inputs {
				g.Go(func() error {
					// A lost clicker shouldn't take the lesson down with it.
					if err := driver.Run(ctx); err != nil {
						logger.Error("driver.run", "err", err)
					}
					return nil
				})
			}
			g.Go(func() error {
				return server.Start(ctx, flags.Addr)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "HTTP listen address")
	cmd.Flags().StringVar(&serialFlags.SerialPort, "clicker-port", serialFlags.SerialPort, `serial port of a presenter clicker, or "auto"`)
	cmd.Flags().IntVar(&serialFlags.BaudRate, "baud", serialFlags.BaudRate, "clicker baud rate")
	cmd.Flags().StringVar(&serialFlags.Session, "clicker-session", serialFlags.Session, "session the clicker drives")
	cmd.Flags().StringVar(&replayFlags.Path, "replay", replayFlags.Path, "YAML cue script to play")
	cmd.Flags().Float64Var(&replayFlags.Speed, "replay-speed", replayFlags.Speed, "replay speed multiplier, 0 plays cues back to back")
	cmd.Flags().BoolVar(&replayFlags.Loop, "replay-loop", replayFlags.Loop, "restart the script when it ends")
	cmd.Flags().StringVar(&replayFlags.Session, "replay-session", replayFlags.Session, "session the replay drives")
	cmd.Flags().DurationVar(&replayFlags.StartDelay, "replay-delay", replayFlags.StartDelay, "wait before the first cue")
	return cmd
}
