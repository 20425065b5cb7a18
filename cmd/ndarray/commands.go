package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/libmisc/internal/config"
	"github.com/born-ml/libmisc/internal/inspect"
	"github.com/born-ml/libmisc/internal/logging"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "ndarray",
		Short:         "Inspect row-major N-dimensional array layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	newLogger := func() (logging.Logger, error) {
		cfg := logging.DefaultConfig()
		cfg.Level = logLevel
		return logging.New(cfg)
	}

	root.AddCommand(
		newVersionCmd(),
		newLayoutCmd(),
		newEnumerateCmd(),
		newCheckCmd(newLogger),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
		},
	}
}

func newLayoutCmd() *cobra.Command {
	var shape string
	cmd := &cobra.Command{
		Use:     "layout",
		Short:   "Print rank, size and strides of a shape",
		Example: "  ndarray layout --shape 2,3,4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dims, err := parseShape(shape)
			if err != nil {
				return err
			}
			r, err := inspect.Describe(dims)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "shape:   %v\n", r.Shape)
			fmt.Fprintf(w, "rank:    %d\n", r.Rank)
			fmt.Fprintf(w, "size:    %d\n", r.Size)
			fmt.Fprintf(w, "strides: %v\n", r.Strides)
			return nil
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "", "Comma separated extents, e.g. 2,3,4 (required)")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func newEnumerateCmd() *cobra.Command {
	var (
		shape string
		limit int
	)
	cmd := &cobra.Command{
		Use:     "enumerate",
		Short:   "Print every coordinate of a shape with its flat offset",
		Example: "  ndarray enumerate --shape 2,3\n  ndarray enumerate --shape 100,100 --limit 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dims, err := parseShape(shape)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			n := 0
			return inspect.Walk(dims, func(idx []int, flat int) bool {
				fmt.Fprintf(w, "%v\t%d\n", idx, flat)
				n++
				return limit <= 0 || n < limit
			})
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "", "Comma separated extents, e.g. 2,3 (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many coordinates (0 = all)")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func newCheckCmd(newLogger func() (logging.Logger, error)) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Build every layout in a TOML or YAML file and verify its index mapping",
		Example: "  ndarray check --config layouts.toml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lggr, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			f, err := config.Load(path)
			if err != nil {
				return err
			}
			results, err := inspect.CheckAll(f, lggr.Named("check"))
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d layouts ok\n", len(results), len(f.Layouts))
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Layout file (.toml, .yaml or .yml) (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// parseShape parses "2,3,4" into []int{2, 3, 4}.
func parseShape(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty shape")
	}
	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse shape %q: axis %d: %w", s, i, err)
		}
		dims[i] = n
	}
	return dims, nil
}
