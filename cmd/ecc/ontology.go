package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/ecc/pkg/ontology"
	"github.com/cognicore/ecc/pkg/ontology/config"
	"github.com/cognicore/ecc/pkg/ontology/htmltree"
	"github.com/cognicore/ecc/pkg/ontology/index"
	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/scaffold"
	"github.com/cognicore/ecc/pkg/ontology/store/sqlite"
)

var errCheckFailed = errors.New("one or more node files failed the check")

func ontologyCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ontology",
		Short: "Build and inspect ontology trees",
	}

	cmd.AddCommand(
		initCmd(g),
		checkCmd(g),
		indexCmd(g),
		showCmd(g),
		exportCmd(g),
	)
	return cmd
}

// inputPath picks the positional TSV argument over the configured one
func inputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input == "" {
		return "", fmt.Errorf("%w: no input file given", internalerr.ErrInvalidConfig)
	}
	return cfg.Input, nil
}

func loadOntology(args []string, cfg *config.Config, logger *slog.Logger) (*ontology.Ontology, string, error) {
	input, err := inputPath(args, cfg)
	if err != nil {
		return nil, "", err
	}

	logger.Debug("Loading ontology", slog.String("input", input))
	o, err := ontology.LoadFile(input, cfg.OntologyOptions())
	if err != nil {
		return nil, input, err
	}
	logger.Debug("Resolved ontology", slog.Int("nodes", o.Len()))
	return o, input, nil
}

func initCmd(g *globals) *cobra.Command {
	var (
		output    string
		extension string
	)

	cmd := &cobra.Command{
		Use:   "init [tsv]",
		Short: "Scaffold a directory of node files from TSV rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd, config.Config{Output: output, Extension: extension})
			if err != nil {
				return err
			}
			if cfg.Output == "" {
				return fmt.Errorf("%w: no output directory given", internalerr.ErrInvalidConfig)
			}

			o, _, err := loadOntology(args, cfg, logger)
			if err != nil {
				return err
			}

			w := scaffold.Writer{Root: cfg.Output, Logger: logger}
			sum, err := w.Write(cmd.Context(), o)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files in %d directories under %s\n",
				sum.Files, sum.Directories, cfg.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory to scaffold into")
	cmd.Flags().StringVar(&extension, "ext", "", "Node file extension (default .yml)")
	return cmd
}

func checkCmd(g *globals) *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate every node file in a scaffolded directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd, config.Config{Extension: extension})
			if err != nil {
				return err
			}

			root := cfg.Output
			if len(args) > 0 {
				root = args[0]
			}
			if root == "" {
				return fmt.Errorf("%w: no directory given", internalerr.ErrInvalidConfig)
			}

			logger.Info("Checking node files", slog.String("root", root), slog.String("extension", cfg.Extension))
			rep, err := scaffold.Check(cmd.Context(), root, cfg.Extension)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range rep.Results {
				if res.OK() {
					fmt.Fprintf(out, "%s.. OK\n", res.Path)
					continue
				}
				fmt.Fprintf(out, "%s.. FAIL\n  %v\n", res.Path, res.Err)
			}

			if !rep.OK() {
				return fmt.Errorf("%w: %d of %d", errCheckFailed, len(rep.Failed()), len(rep.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&extension, "ext", "", "Node file extension (default .yml)")
	return cmd
}

func indexCmd(g *globals) *cobra.Command {
	var (
		dbPath    string
		extension string
	)

	cmd := &cobra.Command{
		Use:   "index [tsv]",
		Short: "Record a resolved ontology in the SQLite index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd, config.Config{Index: dbPath, Extension: extension})
			if err != nil {
				return err
			}
			if cfg.Index == "" {
				return fmt.Errorf("%w: no index database given", internalerr.ErrInvalidConfig)
			}

			o, input, err := loadOntology(args, cfg, logger)
			if err != nil {
				return err
			}

			st, err := sqlite.OpenSQLite(cmd.Context(), cfg.Index)
			if err != nil {
				return fmt.Errorf("open index: %w", err)
			}
			defer st.Close()

			run, err := index.New(st, logger).Record(cmd.Context(), input, o)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d nodes as run %s\n", run.Nodes, run.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite index database")
	cmd.Flags().StringVar(&extension, "ext", "", "Node file extension (default .yml)")
	return cmd
}

func showCmd(g *globals) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a node from the latest indexed run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.load(cmd, config.Config{Index: dbPath})
			if err != nil {
				return err
			}
			if cfg.Index == "" {
				return fmt.Errorf("%w: no index database given", internalerr.ErrInvalidConfig)
			}
			if _, err := os.Stat(cfg.Index); err != nil {
				return fmt.Errorf("open index: %w", err)
			}

			st, err := sqlite.OpenSQLite(cmd.Context(), cfg.Index)
			if err != nil {
				return fmt.Errorf("open index: %w", err)
			}
			defer st.Close()

			d, err := index.Describe(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:   %s\n", d.Entry.Name)
			if d.Entry.IsRoot() {
				fmt.Fprintln(out, "Parent: (root)")
			} else {
				fmt.Fprintf(out, "Parent: %s\n", d.Entry.Parent)
			}
			if d.Entry.Code != "" {
				fmt.Fprintf(out, "Code:   %s\n", d.Entry.Code)
			}
			fmt.Fprintf(out, "Path:   %s\n", d.Entry.Path)
			fmt.Fprintf(out, "Depth:  %d\n", d.Entry.Depth)
			if len(d.Children) > 0 {
				fmt.Fprintln(out, "Children:")
				for _, c := range d.Children {
					fmt.Fprintf(out, "  - %s\n", c.Name)
				}
			}
			fmt.Fprintf(out, "Run:    %s (%s, %s)\n", d.Run.ID, d.Run.Source, d.Run.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite index database")
	return cmd
}

func exportCmd(g *globals) *cobra.Command {
	var (
		htmlPath  string
		extension string
	)

	cmd := &cobra.Command{
		Use:   "export [tsv]",
		Short: "Export the ontology tree as an HTML list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd, config.Config{Extension: extension})
			if err != nil {
				return err
			}

			o, _, err := loadOntology(args, cfg, logger)
			if err != nil {
				return err
			}

			if htmlPath == "" || htmlPath == "-" {
				return htmltree.Render(cmd.OutOrStdout(), o)
			}

			f, err := os.Create(htmlPath)
			if err != nil {
				return err
			}
			if err := htmltree.Render(f, o); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			logger.Info("Exported ontology", slog.String("path", htmlPath), slog.Int("nodes", o.Len()))
			return nil
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "Output HTML file (stdout when empty or -)")
	cmd.Flags().StringVar(&extension, "ext", "", "Node file extension used in links (default .yml)")
	return cmd
}
