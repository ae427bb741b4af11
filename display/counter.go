package display

import (
	"fmt"

	"github.com/iw2rmb/wordcounter/markup"
)

// Counter renders the word count with a fixed label.
func Counter(count int) *markup.Node {
	return markup.P("mb2", fmt.Sprintf("Word count: %d", count))
}
