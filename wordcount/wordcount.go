// Package wordcount derives the word count and completion ratio shown by the
// word counter.
package wordcount

import "regexp"

// wordRE matches maximal runs of word characters: [0-9A-Za-z_].
var wordRE = regexp.MustCompile(`\w+`)

// Count returns the number of word-character runs in text.
//
// It is a lightweight tokenizer: "one-two" counts as 2 and "don't" as 2.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return len(wordRE.FindAllStringIndex(text, -1))
}

// Progress returns wordCount / target.
//
// target is not guarded: 0 yields +Inf, or NaN when wordCount is also 0.
func Progress(wordCount, target int) float64 {
	return float64(wordCount) / float64(target)
}

// Percentage scales a completion ratio to percent. Values are not clamped.
func Percentage(completion float64) float64 {
	return completion * 100
}
