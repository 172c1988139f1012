package stream

import (
	"fmt"
	"io"
)

// Progress tracks fold progress.
type Progress struct {
	Lines    int64
	BytesIn  int64
	BytesOut int64
	Done     bool
}

// ProgressFunc is called periodically with progress updates.
type ProgressFunc func(Progress)

// FormatBytes formats bytes as human-readable string.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// ProgressPrinter returns a ProgressFunc that writes a single updating
// status line to w.
func ProgressPrinter(w io.Writer, label string) ProgressFunc {
	return func(p Progress) {
		fmt.Fprintf(w, "\r[%s] %d lines, %s in, %s out",
			label, p.Lines, FormatBytes(p.BytesIn), FormatBytes(p.BytesOut))
		if p.Done {
			fmt.Fprintln(w)
		}
	}
}
