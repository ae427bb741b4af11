package display

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/iw2rmb/wordcounter/markup"
	"github.com/iw2rmb/wordcounter/wordcount"
)

// ProgressID is the id of the progress element, referenced by its label.
const ProgressID = "progress"

// ProgressBar renders a completion ratio as a bar and its percentage text.
//
// completion is expected in [0,1] but neither clamped nor validated: 1.5
// reads "150%" and a non-finite ratio reads "+Inf%" or "NaN%".
func ProgressBar(completion float64) *markup.Node {
	percentage := wordcount.Percentage(completion)
	return markup.Div("mv2 flex flex-column",
		markup.Label("mv2", ProgressID, "Progress"),
		markup.Progress(ProgressID, "bn", completion, FormatPercentage(percentage)+"%"),
	)
}

// FormatPercentage prints p in its shortest exact form.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Bar draws progress elements with bubbles/progress.
type Bar struct {
	model progress.Model
}

func NewBar(width int) Bar {
	m := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		m.Width = width
	}
	return Bar{model: m}
}

// View draws the bar. The graphic cannot extend past its track, so ratios
// outside [0,1] fill it completely or not at all; the percentage text next
// to it carries the exact value.
func (b Bar) View(completion float64) string {
	return b.model.ViewAs(barFill(completion))
}

func barFill(completion float64) float64 {
	switch {
	case math.IsNaN(completion), completion < 0:
		return 0
	case completion > 1:
		return 1
	default:
		return completion
	}
}
