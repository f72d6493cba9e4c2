package algorithms

import "strings"

var videoHosts = []string{"youtube.com", "vimeo.com"}
var videoExtensions = []string{".mp4", ".mov"}

// IsVideoURL matches on a case-insensitive .mp4/.mov suffix or a known video host.
func IsVideoURL(url string) bool {
	u := strings.ToLower(url)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(u, ext) {
			return true
		}
	}
	for _, host := range videoHosts {
		if strings.Contains(u, host) {
			return true
		}
	}
	return false
}

// MediaQualityScore scores a post's media list in [0,10].
func MediaQualityScore(urls []string) float64 {
	if len(urls) == 0 {
		return 0
	}

	score := min(float64(len(urls))*1.5, 8)

	videos := 0
	for _, u := range urls {
		if IsVideoURL(u) {
			videos++
		}
	}
	score += float64(min(videos, 2))

	return Clamp(score, 0, 10)
}
