// Package main provides the CLI entry point for exutil-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/exutil-go/pkg/exutil/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "exutil",
		Short: "Search Excel workbooks and extract cell ranges",
		Long: `exutil-go searches Excel workbooks for cells equal or similar to target
values, extracts rectangular ranges of typed cell values and filters
files by wildcard pattern. Results are written as JSON.

Every flag can also be set through an EXUTIL_* environment variable
(e.g. EXUTIL_THRESHOLD=0.9) or a config file given with --config.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("output", "o", "", "Output file path (default: stdout)")
	pf.Bool("pretty", false, "Pretty-print JSON output")
	pf.BoolP("verbose", "v", false, "Log debug records to stderr")
	pf.String("config", "", "Config file (yaml, json or toml)")

	rootCmd.AddCommand(a.newSearchCmd())
	rootCmd.AddCommand(a.newRangeCmd())
	rootCmd.AddCommand(a.newFilesCmd())
	rootCmd.AddCommand(a.newInfoCmd())

	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("EXUTIL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// write serializes v to --output, or to the command's stdout.
func (a *app) write(cmd *cobra.Command, v interface{}) error {
	pretty := a.v.GetBool("pretty")
	if path := a.v.GetString("output"); path != "" {
		if err := output.WriteFile(path, v, pretty); err != nil {
			return err
		}
		a.logger.Info("wrote output", "path", path)
		return nil
	}
	return output.Write(cmd.OutOrStdout(), v, pretty)
}
