// Package markup is the structural layer between components and the terminal.
//
// Components build a small tree of Nodes carrying tags, ids and style-class
// names; a Renderer resolves the classes through a stylesheet and lays the
// tree out with lipgloss.
package markup

import "strings"

// Node is one element of a rendered component tree.
type Node struct {
	Tag      string
	ID       string
	For      string // id of the element a label describes
	Class    string
	Text     string
	Children []*Node

	// Value holds element state that has no text form, such as a progress
	// element's completion ratio.
	Value float64
}

func NewNode(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

func Form(class string, children ...*Node) *Node { return NewNode("form", class, children...) }

func Div(class string, children ...*Node) *Node { return NewNode("div", class, children...) }

func P(class, text string) *Node {
	return &Node{Tag: "p", Class: class, Text: text}
}

// Label describes the element whose id is htmlFor.
func Label(class, htmlFor, text string) *Node {
	return &Node{Tag: "label", Class: class, For: htmlFor, Text: text}
}

// Progress is a completion indicator. text is shown alongside the bar.
func Progress(id, class string, value float64, text string) *Node {
	return &Node{Tag: "progress", ID: id, Class: class, Value: value, Text: text}
}

// Raw wraps already rendered output, such as an embedded widget view.
func Raw(id, class, rendered string) *Node {
	return &Node{Tag: "raw", ID: id, Class: class, Text: rendered}
}

// Find returns the first node in depth-first order with the given id.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// LabelFor returns the label node describing the element with id.
func (n *Node) LabelFor(id string) *Node {
	if n == nil {
		return nil
	}
	if n.Tag == "label" && n.For == id {
		return n
	}
	for _, c := range n.Children {
		if f := c.LabelFor(id); f != nil {
			return f
		}
	}
	return nil
}

// Classes returns every class name used in the tree, in first-use order.
func (n *Node) Classes() []string {
	var out []string
	seen := map[string]bool{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		for _, c := range strings.Fields(n.Class) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
