// Package models defines the report data structures produced by one
// collection run. These structures are serialized to JSON for embedding
// in benchmark reports.
package models

import "time"

// SystemSnapshot is a single point-in-time description of the host
// runtime environment. It is constructed fresh for every report and
// never mutated afterwards. Unresolvable fields hold defined sentinel
// strings ("N/A", "Unrecognized processor"), never empty values.
type SystemSnapshot struct {
	RuntimeVersion  string `json:"runtime_version"`  // e.g., "go1.21.6"
	PlatformVersion string `json:"platform_version"` // toolchain release, e.g., "go1.21.6" from $GOROOT/VERSION
	CoreCount       int    `json:"core_count"`       // logical scheduler-visible CPUs
	OSFamily        string `json:"os_family"`        // Linux, macOS, Windows, FreeBSD
	CPUModel        string `json:"cpu_model"`        // free-text vendor model string
	AvailableMemory string `json:"available_memory"` // formatted total physical memory
}

// HostExtras carries supplemental host identity fields that benchmark
// reports want alongside the snapshot. Fields that cannot be determined
// hold the "N/A" sentinel.
type HostExtras struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`             // e.g., "linux"
	Platform      string `json:"platform"`       // e.g., "ubuntu 22.04"
	KernelVersion string `json:"kernel_version"` // e.g., "6.5.0-14-generic"
	UptimeSeconds uint64 `json:"uptime_seconds"`
	BootTime      int64  `json:"boot_time"` // Unix timestamp, 0 if unknown
}

// Report is the full payload of one collection run.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Snapshot    SystemSnapshot `json:"snapshot"`
	Host        HostExtras     `json:"host"`
}
