// Package report renders and delivers the collected report. The writer
// emits JSON to stdout or a file; the publisher optionally POSTs the
// same payload to an HTTP endpoint.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benchkit/sysreport/internal/models"
)

// Write renders the report as JSON to the given destination path.
// A path of "-" (or empty) writes to stdout. Parent directories are
// created as needed for file destinations.
func Write(rep models.Report, path string, pretty bool) error {
	data, err := marshalReport(rep, pretty)
	if err != nil {
		return err
	}

	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// marshalReport serializes the report, newline-terminated.
func marshalReport(rep models.Report, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(rep, "", "  ")
	} else {
		data, err = json.Marshal(rep)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return append(data, '\n'), nil
}
