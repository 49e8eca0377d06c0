// Snapshot orchestration — resolves the OS family once, runs the two
// diagnostic commands for that family, and assembles the immutable
// snapshot from their parsed output plus runtime metadata.
package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/benchkit/sysreport/internal/models"
)

// Collector builds SystemSnapshot values. It holds no cross-call state;
// repeated Collect calls are independent and safe from multiple
// goroutines.
type Collector struct {
	runner *Runner
	logger *zap.Logger

	// versionFile is the toolchain release file read for the platform
	// version. Overridable in tests.
	versionFile string
}

// NewCollector creates a Collector using the given runner for external
// command execution. A nil logger is replaced with a no-op logger.
func NewCollector(runner *Runner, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		runner:      runner,
		logger:      logger,
		versionFile: filepath.Join(runtime.GOROOT(), "VERSION"),
	}
}

// Collect gathers one snapshot. The family is detected exactly once and
// selects both the CPU and memory command paths. Each field is computed
// independently; a failure in one degrades that field to its sentinel
// without blocking the others.
func (c *Collector) Collect(ctx context.Context) models.SystemSnapshot {
	family := Detect()
	cpuCmd, cpuArgs := family.CPUCommand()
	memCmd, memArgs := family.MemoryCommand()

	return models.SystemSnapshot{
		RuntimeVersion:  runtime.Version(),
		PlatformVersion: c.platformVersion(),
		CoreCount:       runtime.NumCPU(),
		OSFamily:        family.String(),
		CPUModel:        ParseCPU(family, c.runner.Run(ctx, cpuCmd, cpuArgs...)),
		AvailableMemory: ParseMemory(family, c.runner.Run(ctx, memCmd, memArgs...)),
	}
}

// platformVersion reads the toolchain release file under GOROOT. When
// the file is unreadable (stripped installs, cross-compiled binaries)
// it logs a diagnostic and falls back to the coarser runtime version
// string instead of failing the collection.
func (c *Collector) platformVersion() string {
	data, err := os.ReadFile(c.versionFile)
	if err != nil {
		c.logger.Warn("Toolchain version file unreadable, using runtime version",
			zap.String("path", c.versionFile),
			zap.Error(err))
		return runtime.Version()
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	return strings.TrimSpace(line)
}
