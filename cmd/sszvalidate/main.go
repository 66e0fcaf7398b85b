// Command sszvalidate runs the full validation harness against the default
// run configuration (plus the optional SSZ_CONFIG TOML overlay) and reports
// every check outcome. It exits non-zero when any check fails.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/internal/validation"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	})))

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("load configuration", "err", err)
		os.Exit(2)
	}
	slog.Info("validation run",
		"run_id", cfg.ID.String(),
		"version", cfg.Version,
		"xi_mode", cfg.XiMode.String(),
		"redshift_mode", cfg.RedshiftMode.String(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	suite, err := validation.Run(ctx, cfg)
	if err != nil {
		slog.Error("harness aborted", "err", err)
		os.Exit(2)
	}

	for _, o := range suite.Outcomes {
		if o.Passed() {
			slog.Info("check passed",
				"id", o.ID,
				"category", string(o.Category),
				"computed", o.Computed,
			)
			continue
		}
		slog.Error("check failed",
			"id", o.ID,
			"category", string(o.Category),
			"expected", o.Expected,
			"computed", o.Computed,
			"tolerance", o.Tolerance,
			"diagnosis", o.Diagnosis,
		)
	}

	slog.Info("suite complete",
		"total", suite.Total,
		"passed", suite.PassedN,
		"failed", suite.FailedN,
		"pass_rate", suite.PassRate,
		"duration", suite.Duration,
	)

	if suite.FailedN > 0 {
		os.Exit(1)
	}
}
