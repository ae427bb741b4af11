// Package app mounts the word counter onto a terminal.
//
// It loads the stylesheet once, builds the widget from configuration, starts
// the startup vitals report and runs the Bubble Tea program bound to a Mount.
package app
