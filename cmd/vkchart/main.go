// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vkchart renders charts described by TOML, YAML,
// or JSON options files to SVG or PNG.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/chart"
	"cogentcore.org/chart/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(cmd.NewApp()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *cmd.App) *cobra.Command {
	var verbose, trace bool
	root := &cobra.Command{
		Use:          "vkchart",
		Short:        "Render charts from options files",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose || trace {
				level = slog.LevelDebug
			}
			logx.Init(c.ErrOrStderr(), level)
			chart.DebugUpdateTrace = trace
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	root.PersistentFlags().BoolVar(&trace, "trace", false, "log the passes of every chart update")

	render := &cobra.Command{
		Use:   "render [options files...]",
		Short: "Render the charts of the options files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := a.RenderCmd(c.Context(), args...)
			return err
		},
	}
	render.Flags().IntVarP(&a.Jobs, "jobs", "j", 0, "number of charts rendered at once (0 for no limit)")

	watch := &cobra.Command{
		Use:   "watch [options file]",
		Short: "Render the chart of the options file each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.WatchCmd(c.Context(), args[0], nil)
		},
	}

	var plain bool
	tooltip := &cobra.Command{
		Use:   "tooltip [options file] [x] [y]",
		Short: "Print the tooltip of the series node at a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			a.Stdout = c.OutOrStdout()
			return a.TooltipCmd(args[0], x, y, plain)
		},
	}
	tooltip.Flags().BoolVar(&plain, "plain", false, "print plain text instead of HTML")

	initCmd := &cobra.Command{
		Use:   "init [options file]",
		Short: "Write an example options file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.InitCmd(args[0])
		},
	}

	for _, c := range []*cobra.Command{render, watch} {
		c.Flags().StringVarP(&a.Output, "output", "o", "", "output file, or directory for several charts")
		c.Flags().StringVarP(&a.Format, "format", "f", "", "output format: svg or png (default from the output extension)")
	}
	root.AddCommand(render, watch, tooltip, initCmd)
	return root
}
