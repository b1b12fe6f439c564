package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/go-strut/strut/cmd/strut/internal/config"
	"github.com/go-strut/strut/pkg/layout"
	"github.com/go-strut/strut/pkg/trace"
	"github.com/go-strut/strut/pkg/uidl"
	"github.com/go-strut/strut/pkg/widgets"
)

var (
	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	rectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Lay out a UI document and print the resolved tree",
		Long: `Load a YAML UI document, run a layout pass at the given viewport
size, and print every node's resolved rectangle.

Coordinates are Y-up: (x, y) is each node's bottom-left corner.

The viewport defaults come from strut.yaml (viewport.width/height)
when run inside a project, otherwise 800x600.

Flags:
  --width N    Viewport width in pixels
  --height N   Viewport height in pixels
  --verbose    Log the layout pass (per-node geometry, pass stats)`,
		Usage: "strut inspect <file.yaml> [--width N] [--height N] [--verbose]",
		Run:   runInspect,
	})
}

type inspectOptions struct {
	width   float64
	height  float64
	verbose bool
}

func runInspect(args []string) error {
	files, opts, err := parseInspectArgs(args)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return fmt.Errorf("exactly one document is required\n\nUsage: strut inspect <file.yaml> [--width N] [--height N]")
	}

	// Flags beat strut.yaml; strut.yaml beats the built-in default.
	width, height := config.DefaultWidth, config.DefaultHeight
	if root, err := config.FindProjectRoot(); err == nil {
		cfg, err := config.Resolve(root)
		if err != nil {
			return err
		}
		width, height = cfg.ViewportWidth, cfg.ViewportHeight
	}
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	root, err := uidl.Load(files[0])
	if err != nil {
		return err
	}
	root.SetSize(width, height)

	logger := zap.NewNop()
	if opts.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}
	stats := trace.New(logger).Run(root)

	fmt.Printf("%s %s\n", textStyle.Render(files[0]),
		summaryStyle.Render(fmt.Sprintf("(viewport %gx%g)", width, height)))
	printTree(root, 0)
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d nodes, %d hidden", stats.Visited, stats.Skipped)))
	if stats.Overflow > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("warning: %d grid children did not fit and were pinned to cell (0,0)", stats.Overflow)))
	}
	return nil
}

func parseInspectArgs(args []string) ([]string, inspectOptions, error) {
	opts := inspectOptions{}
	files := make([]string, 0, 1)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--verbose":
			opts.verbose = true
		case arg == "--width" || arg == "--height":
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			if err := setDimension(&opts, arg, args[i]); err != nil {
				return nil, opts, err
			}
		case strings.HasPrefix(arg, "--width=") || strings.HasPrefix(arg, "--height="):
			name, value, _ := strings.Cut(arg, "=")
			if err := setDimension(&opts, name, value); err != nil {
				return nil, opts, err
			}
		default:
			files = append(files, arg)
		}
	}
	return files, opts, nil
}

func setDimension(opts *inspectOptions, name, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("%s requires a positive number (got %q)", name, value)
	}
	if name == "--width" {
		opts.width = v
	} else {
		opts.height = v
	}
	return nil
}

func printTree(n layout.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	x, y := n.Position()
	w, h := n.Size()
	rect := rectStyle.Render(fmt.Sprintf("[%g,%g %gx%g]", x, y, w, h))

	label := kindStyle.Render(nodeKind(n))
	if l, ok := n.(*widgets.Label); ok {
		label += " " + textStyle.Render(strconv.Quote(l.Text()))
	}
	if n.Hidden() {
		label += " " + summaryStyle.Render("(hidden)")
	}
	fmt.Printf("%s%s %s\n", indent, label, rect)

	if n.Hidden() {
		return
	}
	if c, ok := n.(trace.ChildLister); ok {
		for _, child := range c.Children() {
			printTree(child, depth+1)
		}
	}
}

func nodeKind(n layout.Node) string {
	switch n.(type) {
	case *layout.FlexBox:
		return "flex"
	case *layout.Grid:
		return "grid"
	case *widgets.Box:
		return "box"
	case *widgets.Label:
		return "label"
	case *widgets.Spacer:
		return "spacer"
	default:
		return "node"
	}
}
