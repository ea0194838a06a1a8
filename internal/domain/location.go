package domain

import "strings"

// LocationExtractionPrompt is the instruction sent to the language model;
// %q is replaced with the description.
const LocationExtractionPrompt = "Extract location name from this disaster description: %q"

// GeocodeResult is a resolved place.
type GeocodeResult struct {
	LocationName string
	Point        Point
}

// CleanLocationName normalizes a model's answer: surrounding whitespace,
// quotes and trailing punctuation are removed.
func CleanLocationName(answer string) string {
	s := strings.TrimSpace(answer)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, " \t\"'`*.!;:")
}
