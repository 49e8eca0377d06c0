// Package platform provides an OS abstraction layer for the few host
// facts that cannot be obtained through gopsutil alone.
package platform

// KernelVersion returns the running kernel's release string, queried
// directly from the OS. Used as a fallback when the gopsutil host
// lookup fails.
func KernelVersion() (string, error) {
	return kernelVersion()
}
