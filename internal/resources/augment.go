// Package resources appends static, template-derived resource links to a
// generated answer based on the learner's declared learning style.
package resources

import (
	"strings"

	"github.com/aditir/eduterm/internal/profile"
)

const (
	readingHeader = "\n\nAdditional Reading Resources:\n"
	videoHeader   = "\n\nSuggested YouTube Videos:\n"
	audioHeader   = "\n\nSuggested Audio Clips:\n"
)

// Augment appends at most one resource section to base, chosen by
// learning style. Styles are mutually exclusive, so exactly one category
// can match; an unset or unrecognized style leaves base untouched.
func Augment(base string, style profile.LearningStyle, topic string) string {
	switch style {
	case profile.StyleReading:
		return base + readingHeader + DocumentationLink(topic)
	case profile.StyleWatchingVideos:
		return base + videoHeader + VideoSearchLink(topic)
	case profile.StyleListeningToAudio:
		return base + audioHeader + AudioSearchLink(topic)
	default:
		return base
	}
}

// DocumentationLink derives a wiki article URL from the topic.
func DocumentationLink(topic string) string {
	return "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(topic, " ", "_")
}

// VideoSearchLink derives a video search URL from the topic.
func VideoSearchLink(topic string) string {
	return "https://www.youtube.com/results?search_query=" + strings.ReplaceAll(topic, " ", "+")
}

// AudioSearchLink derives a podcast search URL from the topic.
func AudioSearchLink(topic string) string {
	return "https://www.podcasts.com/search?q=" + strings.ReplaceAll(topic, " ", "+")
}
