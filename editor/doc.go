// Package editor provides the word counter's text entry field as a
// Bubble Tea component.
//
// The field is controlled: its displayed value is whatever the owner last
// passed in, and every edit is reported upward as the complete new value
// through Props.OnTextChanged. The editor never changes its own text.
package editor
