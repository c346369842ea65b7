package router

import "strconv"

// formatBytes renders n in the unit syntax middleware.BodyLimit accepts.
func formatBytes(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n%mb == 0:
		return strconv.FormatInt(n/mb, 10) + "M"
	case n%kb == 0:
		return strconv.FormatInt(n/kb, 10) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}
