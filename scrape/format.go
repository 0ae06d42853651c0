package scrape

import "fmt"

// ShortenURL trims rawURL to at most maxLen bytes for table output. The
// tail of a PDF URL carries the file name, so the head is dropped and
// replaced by "...".
func ShortenURL(rawURL string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case len(rawURL) <= maxLen:
		return rawURL
	case maxLen < 4:
		return rawURL[:maxLen]
	}
	return "..." + rawURL[len(rawURL)-maxLen+3:]
}

// FormatSize renders a text length in bytes as B, KB or MB.
func FormatSize(n int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	}
	return fmt.Sprintf("%d B", n)
}
