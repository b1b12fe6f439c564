// Package main provides the strut demo application.
// It builds a small dashboard screen and prints its resolved geometry.
package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/go-strut/strut/pkg/layout"
	"github.com/go-strut/strut/pkg/trace"
	"github.com/go-strut/strut/pkg/widgets"
)

// Dashboard returns the demo root: a column with a header bar, a grid of
// metric tiles, and a footer spread by space-between.
func Dashboard() layout.Node {
	root := layout.NewFlexBox(&layout.Style{
		Width:   layout.Px(800),
		Height:  layout.Px(600),
		Padding: layout.EdgesAll(layout.Px(16)),
	}, layout.Column)
	root.Gap = 12

	root.Add(header())
	root.Add(tiles())
	root.Add(footer())
	return root
}

func header() layout.Node {
	bar := layout.NewFlexBox(layout.NewStyle(layout.Pct(100), layout.Px(48)), layout.Row)
	bar.Justify = layout.JustifySpaceBetween
	bar.Align = layout.AlignCenter
	bar.Add(widgets.NewLabel("strut dashboard"))
	bar.Add(widgets.NewLabel("v0.1"))
	return bar
}

func tiles() layout.Node {
	grid := layout.NewGrid(
		layout.NewStyle(layout.Pct(100), layout.Px(420)),
		[]layout.SizeSpec{layout.FillSpec(), layout.FillSpec(), layout.FillSpec()},
		[]layout.SizeSpec{layout.Px(200), layout.Px(200)})
	grid.ColumnGap = 12
	grid.RowGap = 12
	grid.JustifyItems = layout.AlignStretch
	grid.AlignItems = layout.AlignStretch

	hero := widgets.NewFlexibleSpacer()
	grid.Add(hero)
	grid.Place(hero, layout.PlaceAt(0, 0).WithSpan(1, 2))

	for i := 0; i < 4; i++ {
		tile := widgets.NewStyledBox(nil)
		tile.Color = 0xFF336699 + uint32(i)*0x00112200
		grid.Add(tile)
	}
	return grid
}

func footer() layout.Node {
	bar := layout.NewFlexBox(layout.NewStyle(layout.Pct(100), layout.Px(24)), layout.Row)
	bar.Justify = layout.JustifySpaceBetween
	bar.Add(widgets.NewLabel("3 grids"))
	bar.Add(widgets.NewSpacer(40, 0))
	bar.Add(widgets.NewLabel("ready"))
	return bar
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	root := Dashboard()
	stats := trace.New(logger).Run(root)

	fmt.Printf("laid out %d nodes in %s (overflow: %d)\n",
		stats.Visited, stats.Duration, stats.Overflow)
}
