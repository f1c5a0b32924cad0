package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/woby-dev/woby/internal/config"
	werrors "github.com/woby-dev/woby/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if !isTerminal(os.Stderr) {
		werrors.DisableColors()
	}
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the persistent flags.
type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "woby",
		Short: "Fine-grained reactive UI runtime",
		Long: `woby renders and serves reactive component trees.

Signals, memos and effects update individual DOM nodes directly.
Components can be registered as custom elements whose attributes
are bridged to reactive props.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to "+config.ConfigFileName+" (default: nearest in parent directories)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		renderCmd(opts),
		serveCmd(opts),
		exportCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration, then applies the environment and flags.
func (o *options) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger picks a text handler on terminals and JSON otherwise, unless
// the configuration forces a format.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	text := cfg.Log.Format == "text"
	if cfg.Log.Format == "auto" {
		if f, ok := w.(*os.File); ok {
			text = isTerminal(f)
		}
	}
	if text {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError prints coded errors with their hints and anything else on one
// line.
func printError(w io.Writer, err error) {
	var we *werrors.Error
	if errors.As(err, &we) {
		werrors.Print(w, we)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
