package youtube

import (
	"errors"
	"testing"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"bare id", "abc123XYZ_0", "abc123XYZ_0", false},
		{"bare id with whitespace", "  abc123XYZ_0  ", "abc123XYZ_0", false},
		{"watch url", "https://www.youtube.com/watch?v=abc123XYZ_0", "abc123XYZ_0", false},
		{"watch url extra params", "https://www.youtube.com/watch?t=42&v=abc123XYZ_0&list=PL1", "abc123XYZ_0", false},
		{"short url", "https://youtu.be/abc123XYZ_0", "abc123XYZ_0", false},
		{"embed url", "https://www.youtube.com/embed/abc123XYZ_0", "abc123XYZ_0", false},
		{"shorts url", "https://www.youtube.com/shorts/abc123XYZ_0", "abc123XYZ_0", false},
		{"live url", "https://www.youtube.com/live/abc123XYZ_0", "abc123XYZ_0", false},
		{"empty", "", "", true},
		{"too short", "abc123", "", true},
		{"too long", "abc123XYZ_0extra", "", true},
		{"illegal characters", "abc 123 XYZ", "", true},
		{"unrelated url", "https://example.com/watch?v=short", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.ref)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidReference) {
					t.Fatalf("ExtractVideoID(%q) error = %v, want ErrInvalidReference", tt.ref, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) error = %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

// Resolution must be idempotent: resolving an already-resolved id
// yields the same id as resolving the URL it came from.
func TestExtractVideoID_Idempotent(t *testing.T) {
	fromURL, err := ExtractVideoID("https://www.youtube.com/watch?v=abc123XYZ_0")
	if err != nil {
		t.Fatalf("ExtractVideoID(url) error = %v", err)
	}

	again, err := ExtractVideoID(fromURL)
	if err != nil {
		t.Fatalf("ExtractVideoID(id) error = %v", err)
	}
	if again != fromURL {
		t.Errorf("resolution not idempotent: %q != %q", again, fromURL)
	}
}

func BenchmarkExtractVideoID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ExtractVideoID("https://www.youtube.com/watch?v=abc123XYZ_0")
	}
}
