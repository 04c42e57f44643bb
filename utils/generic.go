// Package utils contains shared providers and helpers.
package utils

import (
	"strings"
	"time"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// NormalizeDeviceName transforms device name into a key usable in URLs.
func NormalizeDeviceName(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	replacer := strings.NewReplacer("%", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		";", "_",
		".", "_",
		"$", "_",
		"-", "_",
		"?", "_",
		"#", "_",
		" ", "_")
	return replacer.Replace(raw)
}
