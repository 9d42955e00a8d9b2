// Command layout-dump builds a small fixed demo tree, runs it through
// compute_layout, and pretty-prints the resulting box tree to the terminal —
// one runnable example per capability, same as the rest of cmd/.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/fatih/color"

	"layout"
	"layout/internal/tracelog"
)

// cliConfig is read once from the environment so the demo can be scripted
// without flags (LAYOUT_WIDTH/LAYOUT_HEIGHT/LAYOUT_ROUND).
type cliConfig struct {
	Width  float64 `env:"LAYOUT_WIDTH" envDefault:"80"`
	Height float64 `env:"LAYOUT_HEIGHT" envDefault:"24"`
	Round  bool    `env:"LAYOUT_ROUND" envDefault:"true"`
	Trace  bool    `env:"LAYOUT_TRACE" envDefault:"false"`
}

func main() {
	var cfg cliConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s parsing environment: %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}

	tree := layout.NewTree()
	tree.SetConfig(layout.Config{UseRounding: cfg.Round})
	if cfg.Trace {
		tracelog.Enable(tree, os.Stderr)
	}

	root, err := tree.Build(demoTree())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s building demo tree: %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}

	availableSpace := layout.SizeAvailableSpace{
		Width:  layout.Definite(cfg.Width),
		Height: layout.Definite(cfg.Height),
	}
	if err := tree.ComputeLayout(root, availableSpace); err != nil {
		fmt.Fprintf(os.Stderr, "%s computing layout: %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}

	dumpNode(tree, root, 0)
}

// demoTree is a three-column flex header over a block body — enough to
// exercise flex, block, and leaf nodes in one pass without needing a
// document parser.
func demoTree() layout.NodeSpec {
	style := func(fn func(*layout.Style)) layout.Style {
		s := layout.DefaultStyle()
		fn(&s)
		return s
	}

	leaf := func(w, h float64) layout.NodeSpec {
		return layout.NodeSpec{Style: style(func(s *layout.Style) {
			s.Size = layout.Size[layout.Dimension]{Width: layout.DimLen(w), Height: layout.DimLen(h)}
		})}
	}

	header := layout.NodeSpec{
		Style: style(func(s *layout.Style) {
			s.Display = layout.DisplayFlex
			s.Size.Height = layout.DimLen(3)
			s.JustifyContent = layout.AlignSpaceBetween
		}),
		Children: []layout.NodeSpec{leaf(10, 3), leaf(10, 3), leaf(10, 3)},
	}

	body := layout.NodeSpec{
		Style: style(func(s *layout.Style) {
			s.Display = layout.DisplayBlock
		}),
		Children: []layout.NodeSpec{leaf(40, 5), leaf(40, 5)},
	}

	return layout.NodeSpec{
		Style: style(func(s *layout.Style) {
			s.Display = layout.DisplayBlock
		}),
		Children: []layout.NodeSpec{header, body},
	}
}

// dumpNode walks the computed layout tree, colorizing each node by the
// display mode it was laid out with.
func dumpNode(tree *layout.Tree, node layout.NodeID, depth int) {
	l, err := tree.Layout(node)
	if err != nil {
		return
	}

	kindColor := colorForDisplay(tree.Style(node).Display)
	fmt.Printf("%s%s x=%.0f y=%.0f w=%.0f h=%.0f\n",
		indent(depth), kindColor(displayName(tree.Style(node).Display)),
		l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)

	for i := 0; i < tree.ChildCount(node); i++ {
		dumpNode(tree, tree.ChildAt(node, i), depth+1)
	}
}

func colorForDisplay(d layout.Display) func(format string, a ...interface{}) string {
	switch d {
	case layout.DisplayFlex:
		return color.New(color.FgCyan).SprintfFunc()
	case layout.DisplayGrid:
		return color.New(color.FgMagenta).SprintfFunc()
	case layout.DisplayBlock:
		return color.New(color.FgGreen).SprintfFunc()
	default:
		return color.New(color.FgYellow).SprintfFunc()
	}
}

func displayName(d layout.Display) string {
	switch d {
	case layout.DisplayFlex:
		return "FLEX"
	case layout.DisplayGrid:
		return "GRID"
	case layout.DisplayBlock:
		return "BLOCK"
	case layout.DisplayContents:
		return "CONTENTS"
	case layout.DisplayNone:
		return "NONE"
	default:
		return "LEAF"
	}
}

func indent(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
