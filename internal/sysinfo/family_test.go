package sysinfo

import "testing"

func TestFamilyFor(t *testing.T) {
	tests := []struct {
		tag  string
		want Family
	}{
		{"darwin", MacOS},
		{"windows", Windows},
		{"freebsd", FreeBSD},
		{"linux", Linux},
	}
	for _, tt := range tests {
		if got := FamilyFor(tt.tag); got != tt.want {
			t.Errorf("FamilyFor(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestFamilyFor_UnrecognizedTagsMapToLinux(t *testing.T) {
	for _, tag := range []string{"plan9", "solaris", "openbsd", "netbsd", "js", "android", ""} {
		if got := FamilyFor(tag); got != Linux {
			t.Errorf("FamilyFor(%q) = %v, want Linux", tag, got)
		}
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		family Family
		want   string
	}{
		{Linux, "Linux"},
		{MacOS, "macOS"},
		{Windows, "Windows"},
		{FreeBSD, "FreeBSD"},
	}
	for _, tt := range tests {
		if got := tt.family.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.family, got, tt.want)
		}
	}
}

func TestFamilyCommands(t *testing.T) {
	tests := []struct {
		family  Family
		cpuCmd  string
		cpuArgs []string
		memCmd  string
		memArgs []string
	}{
		{Windows, "WMIC", []string{"CPU", "GET", "NAME"}, "WMIC", []string{"COMPUTERSYSTEM", "GET", "TOTALPHYSICALMEMORY"}},
		{MacOS, "sysctl", []string{"-n", "machdep.cpu.brand_string"}, "sysctl", []string{"-n", "hw.memsize"}},
		{FreeBSD, "sysctl", []string{"-n", "hw.model"}, "sysctl", []string{"-n", "hw.physmem"}},
		{Linux, "cat", []string{"/proc/cpuinfo"}, "cat", []string{"/proc/meminfo"}},
	}
	for _, tt := range tests {
		cmd, args := tt.family.CPUCommand()
		if cmd != tt.cpuCmd || !equalArgs(args, tt.cpuArgs) {
			t.Errorf("%v.CPUCommand() = %q %v, want %q %v", tt.family, cmd, args, tt.cpuCmd, tt.cpuArgs)
		}
		cmd, args = tt.family.MemoryCommand()
		if cmd != tt.memCmd || !equalArgs(args, tt.memArgs) {
			t.Errorf("%v.MemoryCommand() = %q %v, want %q %v", tt.family, cmd, args, tt.memCmd, tt.memArgs)
		}
	}
}

func equalArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
