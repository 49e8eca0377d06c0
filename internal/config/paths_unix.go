//go:build linux || darwin || freebsd

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".sysreport", "config.yaml"),
		"/etc/sysreport/config.yaml",
	}
}
