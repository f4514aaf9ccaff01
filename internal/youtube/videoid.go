package youtube

import (
	"regexp"
	"strings"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

// videoIDRe matches a bare 11-character video identifier.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// urlPatterns are the recognized URL shapes, each capturing the id.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([A-Za-z0-9_-]{11})`),
}

// IsVideoID reports whether s is a plausible bare video identifier.
func IsVideoID(s string) bool {
	return videoIDRe.MatchString(s)
}

// ExtractVideoID resolves a video reference (a bare id or a URL of a
// known shape) to its 11-character video id. Resolution is idempotent:
// feeding a resolved id back returns the same id. Returns
// domain.ErrInvalidReference when nothing matches; no network call is
// made here.
func ExtractVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", domain.ErrInvalidReference
	}

	if IsVideoID(ref) {
		return ref, nil
	}

	for _, p := range urlPatterns {
		if m := p.FindStringSubmatch(ref); m != nil {
			return m[1], nil
		}
	}

	return "", domain.ErrInvalidReference
}
