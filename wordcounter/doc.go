// Package wordcounter is the word counter widget: a text field followed by a
// live word count and a progress indicator toward a target count.
//
// Model owns the only mutable state, the editable text. The editor reports
// every edit through a callback that replaces that text wholesale; the word
// count and progress are derived from it on every render and never stored.
package wordcounter
