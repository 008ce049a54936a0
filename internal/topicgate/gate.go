// Package topicgate classifies free-text input as in-scope (educational)
// or out-of-scope using a static denylist. No machine classification.
package topicgate

import "strings"

// denylist holds the non-educational topic keywords that mark input as
// out-of-scope. Matching is by substring, deliberately not word-boundary
// aware: "place" also rejects "placement".
var denylist = []string{
	"movie", "film", "song", "music", "place", "sports", "vacation", "travel",
	"tourism", "restaurants", "shopping_mall", "shopping", "days_date_time",
	"months", "medicines", "doctors", "hospitals", "celebrity", "gossip", "fashion",
	"weather", "politics", "news",
}

// IsEducational reports whether text contains none of the denylisted
// keywords, case-insensitively. An empty string is vacuously educational.
func IsEducational(text string) bool {
	lowered := strings.ToLower(text)
	for _, topic := range denylist {
		if strings.Contains(lowered, topic) {
			return false
		}
	}
	return true
}
