package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// EmbedURLPrefix is the base of the derived player URL.
const EmbedURLPrefix = "https://www.youtube.com/embed/"

// excerptLength is the number of reflection characters kept in the excerpt.
const excerptLength = 80

// Video represents a single journey entry. IDs are server-assigned and
// immutable; Excerpt is derived from Reflection at write time and never
// accepted from clients.
type Video struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	YoutubeID  string    `json:"youtubeId"`
	EmbedURL   string    `json:"embedUrl"`
	Day        int       `json:"day"`
	Date       string    `json:"date"`
	Reflection string    `json:"reflection"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// SynthesizeEmbedURL returns embedURL unchanged when present, otherwise the
// player URL derived from the YouTube ID. Every write path must run payloads
// through this before persisting or echoing them.
func SynthesizeEmbedURL(embedURL, youtubeID string) string {
	if embedURL != "" {
		return embedURL
	}
	return EmbedURLPrefix + youtubeID
}

// MakeExcerpt derives the short listing summary from a reflection: the first
// 80 characters plus an ellipsis when the text is longer. Truncation counts
// runes, not bytes, so multi-byte text is never cut mid-character.
func MakeExcerpt(reflection string) string {
	if utf8.RuneCountInString(reflection) > excerptLength {
		return string([]rune(reflection)[:excerptLength]) + "..."
	}
	return reflection
}

// ParseTags splits comma-separated tag input into a trimmed, order-preserving
// slice. Empty segments left after trimming are dropped: an empty tag can
// never be selected in a filter, so "a,,b" yields ["a","b"].
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}

// ParseDay converts day text input into an integer. Non-numeric input is a
// validation failure reported to the caller, never coerced to zero.
func ParseDay(input string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("day must be a number, got %q", input)
	}

	return day, nil
}
