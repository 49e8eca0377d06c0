// OS family detection and the per-family diagnostic command tables.
// The family is resolved once per collection and selects both the CPU
// and memory query paths, so the two can never disagree about platform.
package sysinfo

import "runtime"

// Family identifies one of the four operating-system categories the
// collector knows how to query.
type Family int

const (
	Linux Family = iota
	MacOS
	Windows
	FreeBSD
)

// String returns the family name as it appears in reports.
func (f Family) String() string {
	switch f {
	case MacOS:
		return "macOS"
	case Windows:
		return "Windows"
	case FreeBSD:
		return "FreeBSD"
	default:
		return "Linux"
	}
}

// Detect resolves the family of the host the process is running on.
func Detect() Family {
	return FamilyFor(runtime.GOOS)
}

// FamilyFor maps a GOOS-style tag to a family. Unrecognized tags map
// to Linux, making this a total function with no error case.
func FamilyFor(tag string) Family {
	switch tag {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	case "freebsd":
		return FreeBSD
	default:
		return Linux
	}
}

// CPUCommand returns the external command that reports the CPU model
// string on this family. The parsers in cpu.go are written against the
// exact output shape of these commands.
func (f Family) CPUCommand() (string, []string) {
	switch f {
	case Windows:
		return "WMIC", []string{"CPU", "GET", "NAME"}
	case MacOS:
		return "sysctl", []string{"-n", "machdep.cpu.brand_string"}
	case FreeBSD:
		return "sysctl", []string{"-n", "hw.model"}
	default:
		return "cat", []string{"/proc/cpuinfo"}
	}
}

// MemoryCommand returns the external command that reports total
// physical memory on this family. See memory.go for the matching parsers.
func (f Family) MemoryCommand() (string, []string) {
	switch f {
	case Windows:
		return "WMIC", []string{"COMPUTERSYSTEM", "GET", "TOTALPHYSICALMEMORY"}
	case MacOS:
		return "sysctl", []string{"-n", "hw.memsize"}
	case FreeBSD:
		return "sysctl", []string{"-n", "hw.physmem"}
	default:
		return "cat", []string{"/proc/meminfo"}
	}
}
