// Package main is the entry point for the sysreport tool.
// It collects a one-shot snapshot of the host runtime environment and
// writes it as a JSON report, optionally publishing it to an endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benchkit/sysreport/internal/config"
	"github.com/benchkit/sysreport/internal/models"
	"github.com/benchkit/sysreport/internal/report"
	"github.com/benchkit/sysreport/internal/sysinfo"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	configPath  = flag.String("config", "", "Path to configuration file (default: auto-discover)")
	outputPath  = flag.String("output", "", "Report destination path, \"-\" for stdout (overrides config)")
	pretty      = flag.Bool("pretty", false, "Indent the JSON report (overrides config)")
	showVersion = flag.Bool("version", false, "Show version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("sysreport %s\n", version)
		os.Exit(0)
	}

	// Load configuration (explicit path wins over auto-discovery)
	path := *configPath
	if path == "" {
		path = config.Locate()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *outputPath != "" {
		cfg.Report.Output = *outputPath
	}
	if *pretty {
		cfg.Report.Pretty = true
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	collector := sysinfo.NewCollector(sysinfo.NewRunner(logger), logger)
	rep := models.Report{
		GeneratedAt: time.Now().UTC(),
		Snapshot:    collector.Collect(ctx),
		Host:        collector.CollectExtras(ctx),
	}

	logger.Info("Snapshot collected",
		zap.String("os_family", rep.Snapshot.OSFamily),
		zap.Int("core_count", rep.Snapshot.CoreCount),
		zap.String("cpu_model", rep.Snapshot.CPUModel),
		zap.String("available_memory", rep.Snapshot.AvailableMemory))

	if err := report.Write(rep, cfg.Report.Output, cfg.Report.Pretty); err != nil {
		logger.Fatal("Failed to write report", zap.Error(err))
	}

	if cfg.Report.URL != "" {
		pub := report.NewPublisher(cfg, logger)
		if err := pub.Publish(ctx, rep); err != nil {
			logger.Error("Failed to publish report", zap.Error(err))
			os.Exit(1)
		}
	}
}

// initLogger creates a zap logger based on the configuration.
// Logs go to stderr (human-readable) so the report itself owns stdout,
// plus optionally a JSON log file.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Console output (human-readable)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	// File output (structured JSON, if configured)
	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
