package resources

import (
	"strings"
	"testing"

	"github.com/aditir/eduterm/internal/profile"
)

func TestAugment(t *testing.T) {
	const base = "A binary search halves the search interval each step."

	tests := []struct {
		name       string
		style      profile.LearningStyle
		topic      string
		wantHeader string
		wantLink   string
	}{
		{
			name:       "reading appends wiki link with underscores",
			style:      profile.StyleReading,
			topic:      "binary search",
			wantHeader: "Additional Reading Resources:",
			wantLink:   "https://en.wikipedia.org/wiki/binary_search",
		},
		{
			name:       "videos appends search link with pluses",
			style:      profile.StyleWatchingVideos,
			topic:      "binary search",
			wantHeader: "Suggested YouTube Videos:",
			wantLink:   "https://www.youtube.com/results?search_query=binary+search",
		},
		{
			name:       "audio appends podcast search link",
			style:      profile.StyleListeningToAudio,
			topic:      "binary search",
			wantHeader: "Suggested Audio Clips:",
			wantLink:   "https://www.podcasts.com/search?q=binary+search",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Augment(base, tt.style, tt.topic)
			if !strings.HasPrefix(got, base) {
				t.Fatal("augmented text must start with the base response")
			}
			if !strings.Contains(got, tt.wantHeader) {
				t.Errorf("missing header %q in %q", tt.wantHeader, got)
			}
			if !strings.Contains(got, tt.wantLink) {
				t.Errorf("missing link %q in %q", tt.wantLink, got)
			}
		})
	}
}

func TestAugment_NoStyleLeavesBaseUntouched(t *testing.T) {
	const base = "Some answer."

	if got := Augment(base, profile.StyleNone, "anything"); got != base {
		t.Errorf("got %q, want base unchanged", got)
	}
	if got := Augment(base, profile.LearningStyle("Telepathy"), "anything"); got != base {
		t.Errorf("unrecognized style: got %q, want base unchanged", got)
	}
}

func TestAugment_ExactlyOneSection(t *testing.T) {
	got := Augment("base", profile.StyleReading, "cell biology")

	headers := []string{
		"Additional Reading Resources:",
		"Suggested YouTube Videos:",
		"Suggested Audio Clips:",
	}
	count := 0
	for _, h := range headers {
		if strings.Contains(got, h) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d resource sections, want exactly 1:\n%s", count, got)
	}
}
