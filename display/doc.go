// Package display holds the word counter's stateless leaf components.
//
// Each leaf renders purely from its inputs into markup nodes and never
// holds state of its own.
package display
