package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	widthKey      = "width"
	heightKey     = "height"
	iterationsKey = "iterations"
	formatKey     = "format"
	outKey        = "out"
	logLevelKey   = "log-level"

	logLevelNone = "none"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "benchmark",
		Usage: "Measure validate and invalidate+render latency of tracked property chains",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:             widthKey,
				Usage:            "Number of independent chains per graph",
				Value:            []int64{1, 10, 100},
				Sources:          cli.EnvVars("TAGPARTY_WIDTH"),
				Validator:        validateSizes,
				ValidateDefaults: true,
			},
			&cli.IntSliceFlag{
				Name:             heightKey,
				Usage:            "Number of computeds per chain",
				Value:            []int64{1, 10, 100},
				Sources:          cli.EnvVars("TAGPARTY_HEIGHT"),
				Validator:        validateSizes,
				ValidateDefaults: true,
			},
			&cli.IntFlag{
				Name:    iterationsKey,
				Usage:   "Samples per benchmark",
				Value:   100,
				Sources: cli.EnvVars("TAGPARTY_ITERATIONS"),
			},
			&cli.StringFlag{
				Name:    formatKey,
				Usage:   "Output format: pretty, ascii or html",
				Value:   formatPretty,
				Sources: cli.EnvVars("TAGPARTY_FORMAT"),
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Where html output is written",
				Value: "benchmark.html",
			},
			&cli.StringFlag{
				Name:    logLevelKey,
				Usage:   "none, debug, info, warn or error",
				Value:   logLevelNone,
				Sources: cli.EnvVars("TAGPARTY_LOG_LEVEL"),
			},
		},
		Action: benchmark,
	}
}

func benchmark(ctx context.Context, cmd *cli.Command) error {
	logger, err := getLogger(cmd.String(logLevelKey))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", logLevelKey)
	}
	defer logger.Sync()

	widths := sizes(cmd.IntSlice(widthKey))
	heights := sizes(cmd.IntSlice(heightKey))
	iters := int(cmd.Int(iterationsKey))
	if iters <= 0 {
		return errors.Errorf("--%s must be positive", iterationsKey)
	}

	format := cmd.String(formatKey)
	switch format {
	case formatPretty, formatASCII, formatHTML:
	default:
		return errors.Errorf("unknown --%s %q", formatKey, format)
	}

	start := time.Now()
	logger.Info("benchmark started",
		zap.Ints("widths", widths),
		zap.Ints("heights", heights),
		zap.Int("iterations", iters),
	)
	defer func() {
		logger.Info("benchmark finished", zap.Duration("elapsed", time.Since(start)))
	}()

	results, err := runAll(logger, widths, heights, iters)
	if err != nil {
		return err
	}

	switch format {
	case formatASCII:
		renderASCII(os.Stdout, results)
	case formatHTML:
		return writeHTML(cmd.String(outKey), results)
	default:
		renderPretty(os.Stdout, results)
	}
	return nil
}

// getLogger builds a production logger at level, or a no-op one for "none".
func getLogger(level string) (*zap.Logger, error) {
	if level == logLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func validateSizes(sizes []int64) error {
	for _, n := range sizes {
		if n < 0 {
			return errors.Errorf("size %d is negative", n)
		}
	}
	return nil
}

func sizes(raw []int64) []int {
	out := make([]int, len(raw))
	for i, n := range raw {
		out[i] = int(n)
	}
	return out
}
