// Package buffer implements the grapheme-accurate text model behind the
// word counter's editing surface.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open: [Start, End).
package buffer
