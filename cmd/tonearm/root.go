package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tonearm/internal/apperr"
	"tonearm/internal/config"
	"tonearm/internal/geometry"
	"tonearm/internal/logging"
)

type rootOptions struct {
	scheme      string
	nulls       []float64
	listSchemes bool
	output      string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var opts rootOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "tonearm [pivot-to-spindle] (--scheme NAME | --nulls INNER OUTER)",
		Short: "Calculate tonearm offset angle and overhang",
		Long: `Calculate offset angle and overhang from a pivot-to-spindle distance and
two null points, given directly with --nulls or taken from a named alignment
scheme with --scheme. Distances are in millimetres.`,
		Example: `  tonearm 212 --scheme "Löfgren A / Baerwald"
  tonearm 222 --nulls 60 120
  tonearm --list-schemes`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			return ctx.initLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, ctx, &opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level on stderr (debug, info, warn, error)")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.scheme, "scheme", "", "Alignment scheme to take null points from (see --list-schemes)")
	flags.Float64SliceVar(&opts.nulls, "nulls", nil, "Custom inner and outer null points in millimetres (--nulls INNER OUTER)")
	flags.BoolVar(&opts.listSchemes, "list-schemes", false, "Show the available schemes and exit")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: text, json, or table (default from config)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperr.Usage("%v", err)
	})

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runCalculate(cmd *cobra.Command, ctx *commandContext, opts *rootOptions, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(cmd.Flags(), opts.output, cfg)
	if err != nil {
		return err
	}
	catalog, err := ctx.catalog()
	if err != nil {
		return err
	}
	logger := ctx.componentLogger("calculate")

	if opts.listSchemes {
		logger.Debug("listing schemes", logging.Int("count", len(catalog.All())))
		return renderSchemes(cmd.OutOrStdout(), format, catalog.All())
	}

	nullsSet := cmd.Flags().Changed("nulls")
	schemeSet := cmd.Flags().Changed("scheme")
	if nullsSet && schemeSet {
		return apperr.Usage("argument --scheme: not allowed with argument --nulls")
	}
	if len(args) > 1 {
		return apperr.Usage("unrecognized arguments: %s", strings.Join(args[1:], " "))
	}
	if len(args) == 0 {
		return apperr.Usage("pivot-to-spindle distance is required unless --list-schemes is used")
	}
	pivot, err := parseFinite("pivot-to-spindle distance", args[0])
	if err != nil {
		return err
	}

	var inner, outer float64
	switch {
	case nullsSet:
		if len(opts.nulls) != 2 {
			return apperr.Usage("argument --nulls: expected 2 arguments")
		}
		inner, outer = opts.nulls[0], opts.nulls[1]
		if !isFinite(inner) || !isFinite(outer) {
			return apperr.Usage("argument --nulls: null points must be finite numbers")
		}
	case schemeSet:
		selected, err := catalog.Lookup(opts.scheme)
		if err != nil {
			return err
		}
		logger.Debug("resolved scheme", logging.String(logging.FieldScheme, selected.Name))
		inner, outer = selected.Nulls()
	default:
		return apperr.Usage("choose --scheme or provide --nulls")
	}

	input := geometry.Input{PivotToSpindle: pivot, InnerNull: inner, OuterNull: outer}
	result, err := input.Compute()
	if err != nil {
		logger.Debug("geometry rejected",
			logging.Float64("pivot_to_spindle", input.PivotToSpindle),
			logging.Float64("inner_null", input.InnerNull),
			logging.Float64("outer_null", input.OuterNull),
			logging.Error(err),
		)
		return err
	}
	logger.Debug("computed geometry",
		logging.Float64("effective_length", result.EffectiveLength),
		logging.Float64("offset_angle_deg", result.OffsetAngleDeg),
		logging.String("output", format),
	)
	return renderGeometry(cmd.OutOrStdout(), format, result)
}

func resolveOutputFormat(flags *pflag.FlagSet, flagValue string, cfg *config.Config) (string, error) {
	format := cfg.Output.Format
	if flags.Changed("output") {
		format = strings.ToLower(strings.TrimSpace(flagValue))
	}
	if err := config.ValidateOutputFormat(format); err != nil {
		return "", apperr.Usage("argument --output: %v", err)
	}
	return format, nil
}

func parseFinite(label, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isFinite(value) {
		return 0, apperr.Usage("invalid %s %q: must be a finite number", label, raw)
	}
	return value, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

