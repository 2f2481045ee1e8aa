package vtree

import (
	"github.com/jedib0t/go-pretty/v6/text"
)

// Connector glyphs, aligned so a child's subtree indents under its own
// connector: a vertical continuation beneath a branch, blanks beneath the
// corner.
const (
	connectorBranch = "├── "
	connectorCorner = "└── "
	continueBranch  = "│   "
	continueCorner  = "    "
)

// Style controls how rendered lines are decorated.
type Style struct {
	// Color emphasizes virtual directories with color and bold. Off for
	// quiet mode and non-terminal output.
	Color bool
}

var dirColors = text.Colors{text.FgHiCyan, text.Bold}

// Render walks the tree depth-first and returns one formatted line per
// entry, ready to be printed beneath the root's own heading. It has no
// output side effects; the caller owns the writing.
func Render(root *Node, style Style) []string {
	return renderChildren(root, "", style)
}

func renderChildren(n *Node, indent string, style Style) []string {
	var lines []string
	for i, child := range n.children {
		connector, continuation := connectorBranch, continueBranch
		if i == len(n.children)-1 {
			connector, continuation = connectorCorner, continueCorner
		}

		label := child.Name
		if child.IsDir() && style.Color {
			label = dirColors.Sprint(label)
		}
		lines = append(lines, indent+connector+label)
		lines = append(lines, renderChildren(child, indent+continuation, style)...)
	}
	return lines
}
