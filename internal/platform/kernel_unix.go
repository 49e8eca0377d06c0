//go:build linux || darwin || freebsd

package platform

import "golang.org/x/sys/unix"

// kernelVersion reads the kernel release via uname(2).
func kernelVersion() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}
