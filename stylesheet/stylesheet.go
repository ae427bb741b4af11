// Package stylesheet maps style-class names to terminal styles.
//
// Components emit class names only. A Sheet is loaded once at startup from a
// YAML document (or the embedded default) and resolves a class attribute such
// as "mv2 flex flex-column" into a lipgloss.Style plus layout hints.
package stylesheet

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSheet []byte

// File is the on-disk stylesheet document.
type File struct {
	Version string              `yaml:"version"`
	Classes map[string]ClassDef `yaml:"classes"`
}

// ClassDef describes one class. Zero values leave the property unset, so
// classes compose left to right.
type ClassDef struct {
	Foreground       string `yaml:"foreground,omitempty"`
	Background       string `yaml:"background,omitempty"`
	Bold             *bool  `yaml:"bold,omitempty"`
	Italic           *bool  `yaml:"italic,omitempty"`
	Faint            *bool  `yaml:"faint,omitempty"`
	Underline        *bool  `yaml:"underline,omitempty"`
	Border           string `yaml:"border,omitempty"`
	BorderForeground string `yaml:"border_foreground,omitempty"`
	Margin           []int  `yaml:"margin,omitempty,flow"`
	Padding          []int  `yaml:"padding,omitempty,flow"`
	Width            int    `yaml:"width,omitempty"`

	// Display "flex" lays children out in a row unless Direction is "column".
	Display   string `yaml:"display,omitempty"`
	Direction string `yaml:"direction,omitempty"`
}

// Direction of child layout.
type Direction int

const (
	Column Direction = iota
	Row
)

// Sheet resolves class attributes. It is immutable after construction.
type Sheet struct {
	classes map[string]ClassDef
}

var colorRE = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

// Default returns the embedded stylesheet.
func Default() *Sheet {
	s, err := Parse(defaultSheet)
	if err != nil {
		panic("stylesheet: embedded default is invalid: " + err.Error())
	}
	return s
}

// Load reads and validates a stylesheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stylesheet: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a stylesheet document.
func Parse(data []byte) (*Sheet, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stylesheet: %w", err)
	}
	classes := make(map[string]ClassDef, len(f.Classes))
	for name, def := range f.Classes {
		classes[name] = def
	}
	return &Sheet{classes: classes}, nil
}

// Validate checks that the document is well-formed.
func (f *File) Validate() error {
	if f.Version == "" {
		return errors.New("version is required")
	}
	if f.Version != "1" {
		return fmt.Errorf("unsupported version: %s (supported: 1)", f.Version)
	}
	for name, def := range f.Classes {
		if strings.ContainsAny(name, " \t\n") {
			return fmt.Errorf("class %q: name must not contain whitespace", name)
		}
		if err := def.validate(); err != nil {
			return fmt.Errorf("class %q: %w", name, err)
		}
	}
	return nil
}

func (d ClassDef) validate() error {
	for field, c := range map[string]string{
		"foreground":        d.Foreground,
		"background":        d.Background,
		"border_foreground": d.BorderForeground,
	} {
		if c != "" && !isValidColor(c) {
			return fmt.Errorf("%s has invalid color %q (expected #RGB, #RRGGBB or 0-255)", field, c)
		}
	}
	if d.Border != "" && d.Border != "none" {
		if _, ok := borders[d.Border]; !ok {
			return fmt.Errorf("unknown border %q", d.Border)
		}
	}
	if len(d.Margin) > 4 {
		return fmt.Errorf("margin takes at most 4 values, got %d", len(d.Margin))
	}
	if len(d.Padding) > 4 {
		return fmt.Errorf("padding takes at most 4 values, got %d", len(d.Padding))
	}
	if d.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", d.Width)
	}
	switch d.Display {
	case "", "block", "flex":
	default:
		return fmt.Errorf("unknown display %q", d.Display)
	}
	switch d.Direction {
	case "", "row", "column":
	default:
		return fmt.Errorf("unknown direction %q", d.Direction)
	}
	return nil
}

func isValidColor(c string) bool {
	if colorRE.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}

// Has reports whether the sheet defines class.
func (s *Sheet) Has(class string) bool {
	_, ok := s.classes[class]
	return ok
}

// Style resolves a space separated class attribute. Unknown classes are
// ignored.
func (s *Sheet) Style(classAttr string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, name := range strings.Fields(classAttr) {
		def, ok := s.classes[name]
		if !ok {
			continue
		}
		st = def.apply(st)
	}
	return st
}

// Layout reports how children of an element with classAttr are arranged.
func (s *Sheet) Layout(classAttr string) Direction {
	flex := false
	dir := ""
	for _, name := range strings.Fields(classAttr) {
		def := s.classes[name]
		switch def.Display {
		case "flex":
			flex = true
		case "block":
			flex = false
		}
		if def.Direction != "" {
			dir = def.Direction
		}
	}
	if flex && dir != "column" {
		return Row
	}
	return Column
}

func (d ClassDef) apply(st lipgloss.Style) lipgloss.Style {
	if d.Foreground != "" {
		st = st.Foreground(lipgloss.Color(d.Foreground))
	}
	if d.Background != "" {
		st = st.Background(lipgloss.Color(d.Background))
	}
	if d.Bold != nil {
		st = st.Bold(*d.Bold)
	}
	if d.Italic != nil {
		st = st.Italic(*d.Italic)
	}
	if d.Faint != nil {
		st = st.Faint(*d.Faint)
	}
	if d.Underline != nil {
		st = st.Underline(*d.Underline)
	}
	switch d.Border {
	case "":
	case "none":
		st = st.BorderStyle(lipgloss.Border{}).
			BorderTop(false).BorderRight(false).BorderBottom(false).BorderLeft(false)
	default:
		st = st.Border(borders[d.Border])
	}
	if d.BorderForeground != "" {
		st = st.BorderForeground(lipgloss.Color(d.BorderForeground))
	}
	if len(d.Margin) > 0 {
		st = st.Margin(d.Margin...)
	}
	if len(d.Padding) > 0 {
		st = st.Padding(d.Padding...)
	}
	if d.Width > 0 {
		st = st.Width(d.Width)
	}
	return st
}
