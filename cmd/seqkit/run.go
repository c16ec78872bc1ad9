package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/recipe"
	"github.com/kbukum/seqkit/util"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [values...]",
		Short: "Run the configured recipe",
		Long: `Run the configured recipe over the given integers. Values may be
separate arguments or comma-separated lists. With no arguments, values are
read from stdin, one or more per line. The result is printed as a single
comma-separated line.`,
		RunE: runRecipe,
	}
	cmd.Flags().String(runIDFlag, "", "UUID identifying this run in logs and spans (default: random)")
	return cmd
}

func runRecipe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	rawID, _ := cmd.Flags().GetString(runIDFlag)
	runID, err := util.ParseRunID(rawID)
	if err != nil {
		return err
	}
	log = log.WithRunID(runID.String())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := initObservability(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer shutdown()

	if len(args) == 0 {
		if args, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	values, err := util.ParseInt64s(args)
	if err != nil {
		log.Error("invalid input", logger.ErrorFields("parse", err))
		return err
	}

	out, err := execute(ctx, cfg.Recipe, values, runID.String(), log)
	if err != nil {
		log.Error("recipe failed", logger.ErrorFields("run", err))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), util.FormatInt64s(out))
	return err
}

// execute compiles r and collects it over values inside a recipe.run span.
func execute(ctx context.Context, r recipe.Recipe, values []int64, runID string, log *logger.Logger) ([]int64, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanRecipeRun, trace.WithAttributes(
		attribute.String(observability.AttrRunID, runID),
		attribute.String(observability.AttrPipeline, r.Name),
	))
	defer span.End()

	out, err := collectRecipe(ctx, r, values, runID, log)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}

func collectRecipe(ctx context.Context, r recipe.Recipe, values []int64, runID string, log *logger.Logger) ([]int64, error) {
	stage, err := recipe.Compile(r, log)
	if err != nil {
		return nil, err
	}
	p, err := stage(pipeline.FromSlice(values))
	if err != nil {
		return nil, err
	}

	metrics, err := observability.NewMetrics(observability.Meter(appName))
	if err != nil {
		return nil, err
	}
	name := util.Coalesce(r.Name, "recipe")
	p = observability.Instrument(p, name, metrics,
		observability.WithSpanAttributes(attribute.String(observability.AttrRunID, runID)))

	out, err := pipeline.Collect(ctx, p)
	if err != nil {
		return nil, err
	}
	log.Debug("recipe finished", logger.Fields("inputs", len(values), logger.FieldElements, len(out)))
	return out, nil
}

// initObservability starts the exporters enabled in cfg and returns a
// function that flushes and stops them.
func initObservability(ctx context.Context, cfg *Config, log *logger.Logger) (func(), error) {
	var stops []func(context.Context) error

	if cfg.Observability.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, &cfg.Observability.Metrics)
		if err != nil {
			return nil, err
		}
		stops = append(stops, mp.Shutdown)
	}
	if cfg.Observability.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Observability.Tracing)
		if err != nil {
			return nil, err
		}
		stops = append(stops, tp.Shutdown)
	}

	return func() {
		for _, stop := range stops {
			if err := stop(context.WithoutCancel(ctx)); err != nil {
				log.Warn("observability shutdown failed", logger.ErrorFields("shutdown", err))
			}
		}
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
