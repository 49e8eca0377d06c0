// Package sysinfo collects a one-shot snapshot of the host runtime
// environment (runtime version, core count, OS family, CPU model, total
// physical memory) for inclusion in benchmark reports.
//
// Host-environment failures never surface as errors: every value that
// cannot be determined degrades to a defined sentinel string inside the
// snapshot, so callers never branch on collection failure.
package sysinfo

import (
	"context"
	"os/exec"

	"go.uber.org/zap"
)

// NotAvailable is the sentinel returned for any value that could not be
// determined. It passes through every downstream parser untouched.
const NotAvailable = "N/A"

// CommandExecutor abstracts external process invocation so tests can
// substitute fixture output without touching the real process table.
type CommandExecutor interface {
	// Output runs the program and returns its combined stdout/stderr.
	// A non-nil error indicates the program could not be started or
	// exited non-zero.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execExecutor runs real processes via os/exec.
type execExecutor struct{}

func (execExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Runner invokes external diagnostic commands and converts every failure
// mode into the NotAvailable sentinel.
type Runner struct {
	exec   CommandExecutor
	logger *zap.Logger
}

// NewRunner creates a Runner backed by real process execution.
func NewRunner(logger *zap.Logger) *Runner {
	return NewRunnerWith(execExecutor{}, logger)
}

// NewRunnerWith creates a Runner with an injected execution strategy.
// A nil logger is replaced with a no-op logger.
func NewRunnerWith(e CommandExecutor, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{exec: e, logger: logger}
}

// Run executes the command synchronously and returns its raw output
// unmodified. On execution failure or non-zero exit it logs a diagnostic
// with the captured output and returns NotAvailable. It never returns
// an error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) string {
	out, err := r.exec.Output(ctx, name, args...)
	if err != nil {
		r.logger.Warn("Diagnostic command failed",
			zap.String("command", name),
			zap.Strings("args", args),
			zap.String("output", string(out)),
			zap.Error(err))
		return NotAvailable
	}
	return string(out)
}
