package citation

import (
	"regexp"
	"strconv"
	"strings"
)

// VideoReference is a single extracted video citation
type VideoReference struct {
	Timestamp   string   `json:"timestamp"`
	VideoTitle  string   `json:"video_title"`
	URLs        []string `json:"urls"`
	Description string   `json:"description"`
}

// Tag grammar: {{timestamp:MM:SS}}{{title:...}}{{url:...}}{{description:...}}
// A reference is emitted only when all four fields parse from one well-formed
// group; partial groups are dropped, not repaired.
var videoTagPattern = regexp.MustCompile(`\{\{timestamp:(\d{2}:\d{2})\}\}\{\{title:([^}]+)\}\}\{\{url:([^}]+)\}\}\{\{description:([^}]+)\}\}`)

// Leading boilerplate phrases stripped from descriptions
var descriptionPrefixPattern = regexp.MustCompile(`^(This video |Here |In this clip |This clip |Shows |Demonstrates )`)

// ParseVideoReferences extracts all well-formed tag groups from a model
// completion. Keys are first-seen order indexes ("0", "1", ...), matching the
// shape the frontend consumes.
func ParseVideoReferences(content string) map[string]VideoReference {
	matches := videoTagPattern.FindAllStringSubmatch(content, -1)

	refs := make(map[string]VideoReference, len(matches))
	for i, match := range matches {
		timestamp, title, url, description := match[1], match[2], match[3], match[4]
		refs[strconv.Itoa(i)] = VideoReference{
			Timestamp:   timestamp,
			VideoTitle:  title,
			URLs:        []string{url},
			Description: normalizeDescription(description),
		}
	}

	return refs
}

// normalizeDescription keeps the first sentence, strips boilerplate openers
// and capitalizes the first letter.
func normalizeDescription(raw string) string {
	clean := strings.TrimSpace(raw)
	if idx := strings.Index(clean, "."); idx >= 0 {
		clean = clean[:idx]
	}
	clean = descriptionPrefixPattern.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return clean
	}
	return strings.ToUpper(clean[:1]) + clean[1:]
}

// Titles returns distinct video titles in first-seen index order.
func Titles(refs map[string]VideoReference) []string {
	seen := make(map[string]bool, len(refs))
	titles := make([]string, 0, len(refs))

	for i := 0; i < len(refs); i++ {
		ref, ok := refs[strconv.Itoa(i)]
		if !ok {
			continue
		}
		if seen[ref.VideoTitle] {
			continue
		}
		seen[ref.VideoTitle] = true
		titles = append(titles, ref.VideoTitle)
	}

	return titles
}
