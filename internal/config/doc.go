// Package config loads word counter settings from defaults, a YAML config
// file, WORDCOUNTER_* environment variables and command-line flags, in
// increasing order of precedence.
package config
