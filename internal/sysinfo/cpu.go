// CPU model extraction — per-family parsing of the raw output produced
// by the commands in Family.CPUCommand.
package sysinfo

import (
	"regexp"
	"strings"
)

// UnrecognizedProcessor is returned when Linux /proc/cpuinfo output has
// no parseable "model name" field.
const UnrecognizedProcessor = "Unrecognized processor"

// linuxModelName captures the value of the "model name" field. The
// capture is restricted to word characters, spaces, parentheses,
// hyphens, @ and periods, which covers vendor strings like
// "Intel(R) Core(TM) i7 @ 2.6GHz".
var linuxModelName = regexp.MustCompile(`(?i)model name.*:([\w \(\)\-@\.]*)`)

// ParseCPU extracts a human-readable CPU model string from raw command
// output. The NotAvailable sentinel passes through untouched for every
// family.
func ParseCPU(family Family, raw string) string {
	if raw == NotAvailable {
		return NotAvailable
	}
	switch family {
	case Windows:
		// WMIC prints a "Name" header line above the model string.
		// If a localized WMIC ever renames the header, the raw text
		// passes through garbled rather than failing loudly.
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Name"))
	case MacOS, FreeBSD:
		// sysctl -n prints exactly the model string.
		return strings.TrimSpace(raw)
	default:
		m := linuxModelName.FindStringSubmatch(raw)
		if m == nil {
			return UnrecognizedProcessor
		}
		return strings.TrimSpace(m[1])
	}
}
