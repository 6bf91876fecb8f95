// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/equate/config"
	"github.com/katalvlaran/equate/equating"
	"github.com/katalvlaran/equate/histogram"
	"github.com/katalvlaran/equate/optimize"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:           "slequate",
		Short:         "Stocking–Lord IRT scale linking",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), rf.logLevel, rf.logFormat)
			if err != nil {
				return err
			}
			rf.logger = l

			return nil
		},
	}
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&rf.logFormat, "log-format", "text", "text or json")

	root.AddCommand(newRunCmd(rf), newBinWidthCmd())

	return root
}

type runFlags struct {
	configPath string
	criterion  string
	precision  int
	output     string
}

// runReport is what `run` prints.
type runReport struct {
	Criterion   string   `json:"criterion"`
	CommonItems int      `json:"common_items"`
	Intercept   float64  `json:"intercept"`
	Slope       float64  `json:"slope"`
	FValue      float64  `json:"f"`
	Iterations  int      `json:"iterations"`
	Evaluations int      `json:"evaluations"`
	Converged   bool     `json:"converged"`
	Items       []string `json:"items"`
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fit the equating constants described by a run file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEquating(cmd.Context(), cmd.OutOrStdout(), rf.logger, f, cmd.Flags().Changed("precision"))
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to the YAML run file")
	cmd.Flags().StringVar(&f.criterion, "criterion", "", "override criterion: q1, q2 or q1q2")
	cmd.Flags().IntVar(&f.precision, "precision", equating.DefaultPrecision, "decimal digits in the report")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "text or json")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runEquating(ctx context.Context, w io.Writer, logger *slog.Logger, f *runFlags, precisionSet bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.criterion != "" {
		if _, err = equating.ParseCriterion(f.criterion); err != nil {
			return err
		}
		file.Criterion = f.criterion
	}
	if precisionSet {
		p := f.precision
		file.Precision = &p
	}

	sl, err := file.Objective()
	if err != nil {
		return err
	}
	if requested, _ := equating.ParseCriterion(file.Criterion); requested != sl.Criterion() {
		logger.Warn("no x_distribution: criterion forced to Q1",
			"requested", requested.String())
	}
	logger.Info("objective ready",
		"criterion", sl.Criterion().String(),
		"common_items", len(sl.CommonItems()),
		"method", file.Optimizer.Method,
		"starts", len(file.Optimizer.Starts))

	problem := optimize.Problem{Func: sl.Objective(), Grad: sl.ObjectiveGradient()}
	res, err := optimize.MultiStart(ctx, file.Optimizer.Minimizer(), problem,
		file.Optimizer.Starts, file.Optimizer.Options(logger))
	if err != nil {
		return fmt.Errorf("minimize: %w", err)
	}
	if !res.Converged {
		logger.Warn("optimizer stopped before convergence",
			"iterations", res.Iterations, "f", res.F)
	}
	sl.Fit(res.X)

	rep := runReport{
		Criterion:   sl.Criterion().String(),
		CommonItems: len(sl.CommonItems()),
		Intercept:   sl.Intercept(),
		Slope:       sl.Scale(),
		FValue:      res.F,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Converged:   res.Converged,
		Items:       sl.CommonItems(),
	}

	return writeReport(w, f.output, rep)
}

func writeReport(w io.Writer, format string, rep runReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	case "", "text":
		_, err := fmt.Fprintf(w,
			"criterion:    %s\ncommon items: %d\nslope (A):    %s\nintercept (B): %s\nF:            %g\niterations:   %d\nconverged:    %t\n",
			rep.Criterion, rep.CommonItems,
			strconv.FormatFloat(rep.Slope, 'f', -1, 64),
			strconv.FormatFloat(rep.Intercept, 'f', -1, 64),
			rep.FValue, rep.Iterations, rep.Converged)

		return err
	}

	return fmt.Errorf("unknown output format %q", format)
}

func newBinWidthCmd() *cobra.Command {
	var (
		bins   int
		lo, hi float64
	)
	cmd := &cobra.Command{
		Use:   "binwidth [values...]",
		Short: "Histogram bin width for a fixed number of bins",
		Long: `Prints (max - min) / bins. With positional values, min and max are
taken from the values; otherwise --min and --max are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				w, err := histogram.BinWidth(lo, hi, bins)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(w, 'f', -1, 64))

				return err
			}

			sb, err := histogram.NewSimpleBins(bins)
			if err != nil {
				return err
			}
			for _, a := range args {
				v, perr := strconv.ParseFloat(a, 64)
				if perr != nil {
					return fmt.Errorf("value %q: %w", a, perr)
				}
				sb.Increment(v)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(sb.BinWidth(), 'f', -1, 64))

			return err
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 10, "number of bins")
	cmd.Flags().Float64Var(&lo, "min", 0, "lowest observed value")
	cmd.Flags().Float64Var(&hi, "max", 1, "highest observed value")

	return cmd
}
