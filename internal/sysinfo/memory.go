// Total physical memory extraction — per-family parsing of the raw
// output produced by the commands in Family.MemoryCommand.
package sysinfo

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// windowsMemoryDigits matches the first run of decimal digits in
	// WMIC output, which reports total physical memory in raw bytes
	// below a header line.
	windowsMemoryDigits = regexp.MustCompile(`\d+`)

	// linuxMemTotal captures the MemTotal figure from /proc/meminfo.
	// The value is reported in kilobytes.
	linuxMemTotal = regexp.MustCompile(`MemTotal:\s*(\d+)`)
)

// ParseMemory extracts total physical memory from raw command output
// and renders it as a human-readable size. The NotAvailable sentinel
// passes through untouched; unparseable output also degrades to it.
func ParseMemory(family Family, raw string) string {
	if raw == NotAvailable {
		return NotAvailable
	}
	b, ok := memoryBytes(family, raw)
	if !ok {
		return NotAvailable
	}
	return FormatBytes(b)
}

// memoryBytes converts raw command output into a canonical byte count.
// Windows and the sysctl families report bytes directly; Linux reports
// kilobytes, converted here with a 1024 multiplier.
func memoryBytes(family Family, raw string) (uint64, bool) {
	switch family {
	case Windows:
		digits := windowsMemoryDigits.FindString(raw)
		if digits == "" {
			return 0, false
		}
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case MacOS, FreeBSD:
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		m := linuxMemTotal.FindStringSubmatch(raw)
		if m == nil {
			return 0, false
		}
		kb, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return kb * 1024, true
	}
}
