package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// Words fuzzy-matches words by label, value, and tags, best match
// first. An empty query returns the input unchanged.
func Words(query string, words []models.Word) []models.Word {
	if query == "" {
		return words
	}

	var searchStrings []string
	for _, w := range words {
		searchStrings = append(searchStrings, fmt.Sprintf("%s %s %s",
			w.LabelJP,
			w.ValueEN,
			strings.Join(w.Tags, " ")))
	}

	matches := fuzzy.Find(query, searchStrings)

	var results []models.Word
	for _, match := range matches {
		results = append(results, words[match.Index])
	}
	return results
}

// Visible filters out nsfw words when the global NSFW display is off.
func Visible(words []models.Word, nsfwEnabled bool) []models.Word {
	if nsfwEnabled {
		return words
	}
	var out []models.Word
	for _, w := range words {
		if !w.NSFW {
			out = append(out, w)
		}
	}
	return out
}
