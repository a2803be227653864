package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starboard/internal/app"
	"github.com/vovakirdan/starboard/internal/config"
	applog "github.com/vovakirdan/starboard/internal/log"
)

type flags struct {
	configPath string
	overrides  config.Config
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "starboard:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "starboard",
		Short:         "In-memory message board with rooms and polling clients",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to config.yaml (created with defaults if missing)")
	pf.StringVar(&f.overrides.Addr, "addr", "", "HTTP listen address")
	pf.StringVar(&f.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.overrides.LogFormat, "log-format", "", "log format: console or json")
	pf.IntVar(&f.overrides.RoomCapacity, "room-capacity", 0, "messages kept per room")
	pf.DurationVar(&f.overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")

	root.AddCommand(newConfigCmd(f))
	return root
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := config.Load(nil, f.configPath)
			if err != nil {
				return err
			}
			cfg.UpdateFrom(f.overrides)

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func serve(parent context.Context, f *flags) error {
	bootLogger := applog.New(f.overrides.LogLevel, f.overrides.LogFormat)

	cfg, path, err := config.Load(bootLogger, f.configPath)
	if err != nil {
		bootLogger.Error().Err(err).Msg("failed to load config")
		return err
	}
	cfg.UpdateFrom(f.overrides)

	logger := applog.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info().Str("config", path).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize app")
		return fmt.Errorf("init app: %w", err)
	}

	logger.Info().Str("addr", cfg.Addr).Msg("starting starboard server")
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
