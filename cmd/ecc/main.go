// Package main provides the ecc binary entry point.
// ecc builds, checks and indexes ontology trees from tab-separated rows.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cognicore/ecc/pkg/ontology/config"
	"github.com/cognicore/ecc/pkg/ontology/tsv"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ecc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		report(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// report prints err to w. Row errors get one line each.
func report(w io.Writer, err error) {
	var rowErrs tsv.RowErrors
	if errors.As(err, &rowErrs) {
		for _, re := range rowErrs {
			fmt.Fprintf(w, "Error: %v\n", re)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// globals holds the persistent flags shared by every subcommand
type globals struct {
	configPath string
	logLevel   string
}

// load resolves the configuration for a subcommand and builds its logger
func (g *globals) load(cmd *cobra.Command, overrides config.Config) (*config.Config, *slog.Logger, error) {
	overrides.LogLevel = g.logLevel
	loader := config.Loader{Path: g.configPath, Overrides: overrides}

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	return cfg, logger, nil
}

func rootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Ontology construction and validation",
		Long: `ecc turns a tab-separated list of ontology rows (name, parent, code)
into a validated tree and lays it out as one YAML file per node.

Every name is checked against the casing rules before the tree is built,
and any structural problem aborts the run before files are written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(ontologyCmd(g))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
