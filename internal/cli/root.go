package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/inarow/internal/config"
	"github.com/mcoot/inarow/internal/factory"
)

var (
	cfg      *Config
	settings *config.Config
	engine   Engine
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "inarow",
		Short: "N-in-a-row rule engine",
		Long: `inarow plays and judges N-in-a-row games (tic-tac-toe, gomoku and
anything in between) on a square board.

Games run in-process by default. With --server every command talks to a
running inarow JSON API instead.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			loaded, err := loadSettings(cfg)
			if err != nil {
				return err
			}
			settings = loaded

			if cfg.ServerURL != "" {
				engine = newRemoteEngine(NewClient(cfg.ServerURL))
				return nil
			}

			app, err := factory.New(factory.Config{
				Rules:  settings.Rules(),
				Logger: newLogger(cmd.ErrOrStderr(), cfg.Verbose),
			})
			if err != nil {
				return err
			}
			engine = newLocalEngine(app)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Config file path (env: INAROW_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Use a remote server instead of the local engine (env: INAROW_SERVER)")
	rootCmd.PersistentFlags().IntVar(&cfg.Size, "size", cfg.Size, "Board size (env: INAROW_BOARD_SIZE)")
	rootCmd.PersistentFlags().IntVar(&cfg.WinLength, "win-length", cfg.WinLength, "Marks in a row needed to win (env: INAROW_WIN_LENGTH)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newLinesCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// loadSettings reads the config file and environment, then applies flag overrides
func loadSettings(c *Config) (*config.Config, error) {
	loaded, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	if c.Size != 0 {
		loaded.Board.Size = c.Size
	}
	if c.WinLength != 0 {
		loaded.Board.WinLength = c.WinLength
	}
	if c.Verbose {
		loaded.LogLevel = "debug"
	}

	if err := loaded.Validate(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// newLogger builds the logger for interactive commands; only warnings show
// unless verbose output is requested
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
