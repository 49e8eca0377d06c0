//go:build !linux && !darwin && !freebsd && !windows

package platform

import "errors"

// kernelVersion is unsupported on platforms without a uname or NT
// version query.
func kernelVersion() (string, error) {
	return "", errors.New("kernel version lookup not supported on this platform")
}
