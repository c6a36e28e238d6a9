// Package prompt renders selection lists into prompt text. Everything
// here is pure: formatting happens on read, never on mutation, and the
// output is fully determined by the input list.
package prompt

import (
	"strconv"
	"strings"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

const (
	positivePrefix = "Positive prompt: "
	negativePrefix = "Negative prompt: "
)

// Format renders a selection list as prompt text.
//
// Card tokens render exactly once as "(<prompt>)" regardless of their
// repeat count, with strength never applied. Plain words repeat
// max(1, round(repeat)) times; strength 1.0 renders the bare value,
// any other strength renders "(value:1.2)" with one decimal.
// Instances are joined with ", " in list order.
func Format(list []models.SelectedWord) string {
	var parts []string
	for _, w := range list {
		if w.CardID != "" {
			parts = append(parts, renderCard(w))
			continue
		}
		rendered := renderWord(w)
		for i := 0; i < repeatCount(w.Repeat); i++ {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, ", ")
}

func renderCard(w models.SelectedWord) string {
	body := w.CardPrompt
	if body == "" {
		body = w.ValueEN
	}
	return "(" + body + ")"
}

func renderWord(w models.SelectedWord) string {
	if w.Strength == 0 || w.Strength == 1.0 {
		return w.ValueEN
	}
	return "(" + w.ValueEN + ":" + FormatStrength(w.Strength) + ")"
}

func repeatCount(r int) int {
	if r < 1 {
		return 1
	}
	return r
}

// FormatStrength renders a strength with exactly one decimal place.
func FormatStrength(s float64) string {
	return strconv.FormatFloat(s, 'f', 1, 64)
}

// WithQuality prepends a quality template's rendered text to base,
// joined with ", ". Either side being empty yields the other
// unmodified.
func WithQuality(quality, base string) string {
	switch {
	case quality == "":
		return base
	case base == "":
		return quality
	default:
		return quality + ", " + base
	}
}

// Combined renders the copy text for both lists at once, with the
// literal list prefixes joined by a newline.
func Combined(positive, negative string) string {
	return positivePrefix + positive + "\n" + negativePrefix + negative
}

// Instance is one rendered occurrence of a selected word, used by
// presentation code that highlights a single instance. The expansion
// rules are identical to Format; only the grouping differs.
type Instance struct {
	ID   string
	Text string
}

// Instances expands a list into its rendered occurrences in order.
// Joining the Text fields with ", " reproduces Format exactly.
func Instances(list []models.SelectedWord) []Instance {
	var out []Instance
	for _, w := range list {
		if w.CardID != "" {
			out = append(out, Instance{ID: w.ID, Text: renderCard(w)})
			continue
		}
		rendered := renderWord(w)
		for i := 0; i < repeatCount(w.Repeat); i++ {
			out = append(out, Instance{ID: w.ID, Text: rendered})
		}
	}
	return out
}
