// Supplemental host identity fields — hostname, distribution, kernel
// and uptime via gopsutil, with a direct OS query as kernel fallback.
package sysinfo

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"go.uber.org/zap"

	"github.com/benchkit/sysreport/internal/models"
	"github.com/benchkit/sysreport/internal/platform"
)

// CollectExtras gathers the supplemental host fields for the report.
// Like Collect, it never fails: fields that cannot be determined hold
// the NotAvailable sentinel.
func (c *Collector) CollectExtras(ctx context.Context) models.HostExtras {
	ex := models.HostExtras{
		Hostname:      NotAvailable,
		OS:            NotAvailable,
		Platform:      NotAvailable,
		KernelVersion: NotAvailable,
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		c.logger.Warn("Host info not available", zap.Error(err))
	} else {
		if info.Hostname != "" {
			ex.Hostname = info.Hostname
		}
		if info.OS != "" {
			ex.OS = info.OS
		}
		if p := strings.TrimSpace(info.Platform + " " + info.PlatformVersion); p != "" {
			ex.Platform = p
		}
		if info.KernelVersion != "" {
			ex.KernelVersion = info.KernelVersion
		}
		ex.UptimeSeconds = info.Uptime
		ex.BootTime = int64(info.BootTime)
	}

	// Kernel fallback via uname / NT version query.
	if ex.KernelVersion == NotAvailable {
		if v, err := platform.KernelVersion(); err == nil && v != "" {
			ex.KernelVersion = v
		} else if err != nil {
			c.logger.Debug("Kernel version fallback failed", zap.Error(err))
		}
	}

	return ex
}
