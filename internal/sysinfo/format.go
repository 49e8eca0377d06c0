// Byte quantity formatting for snapshot fields.
package sysinfo

import "github.com/dustin/go-humanize"

// FormatBytes renders a byte count in IEC units with base-1024 steps:
// 1024 -> "1.0 KiB", 1024^3 -> "1.0 GiB". The unit chosen is always the
// largest that keeps the mantissa >= 1.
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}

// ParseBytes is the inverse of FormatBytes. Round trips are exact at
// unit boundaries: ParseBytes(FormatBytes(1024^k)) == 1024^k.
func ParseBytes(s string) (uint64, error) {
	return humanize.ParseBytes(s)
}
