package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether value looks like local-part@domain with a dot
// in the domain part. It is a syntactic gate only; the server performs the
// authoritative check.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// StripExtension returns filename without its final extension segment.
// "report.v2.pdf" becomes "report.v2"; names without a dot are returned as is.
func StripExtension(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext)
}

// FormatFileSize renders a byte count as B/KB/MB/GB with two decimals above
// the byte range.
func FormatFileSize(bytes int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)

	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kb)
	case bytes < gb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
	}
}

// FormatDate renders a timestamp in the short display form used by the file
// list, e.g. "2 Jan 2006".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
