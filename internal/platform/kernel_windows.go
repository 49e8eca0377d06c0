//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// kernelVersion queries the NT version numbers from the kernel itself,
// bypassing the compatibility shims that lie to GetVersionEx.
func kernelVersion() (string, error) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("%d.%d.%d", major, minor, build), nil
}
