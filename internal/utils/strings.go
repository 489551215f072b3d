package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(color.YellowString(path))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSize renders a byte count with a binary unit suffix.
func FormatSize(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

// FormatRelativeTime renders a Unix timestamp relative to now, e.g.
// "3 hours ago".
func FormatRelativeTime(timestamp uint64) string {
	const (
		minute = 60
		hour   = minute * 60
		day    = hour * 24
		week   = day * 7
		month  = day * 30
		year   = day * 365
	)

	now := uint64(time.Now().Unix())
	var diff uint64
	if now > timestamp {
		diff = now - timestamp
	} else {
		diff = timestamp - now
	}

	switch {
	case diff < minute:
		return "just now"
	case diff < hour:
		return fmt.Sprintf("%d minutes ago", diff/minute)
	case diff < day:
		return fmt.Sprintf("%d hours ago", diff/hour)
	case diff < week:
		return fmt.Sprintf("%d days ago", diff/day)
	case diff < month:
		return fmt.Sprintf("%d weeks ago", diff/week)
	case diff < year:
		return fmt.Sprintf("%d months ago", diff/month)
	default:
		return fmt.Sprintf("%d years ago", diff/year)
	}
}
