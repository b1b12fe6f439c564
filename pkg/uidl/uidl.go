package uidl

import (
	stderrors "errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/layout"
	"github.com/go-strut/strut/pkg/widgets"
)

// nodeDoc is one document node. Exactly one kind key must be set. The
// place block is only legal on direct children of a grid.
type nodeDoc struct {
	Flex   *flexDoc   `yaml:"flex"`
	Grid   *gridDoc   `yaml:"grid"`
	Box    *boxDoc    `yaml:"box"`
	Label  *labelDoc  `yaml:"label"`
	Spacer *spacerDoc `yaml:"spacer"`
	Place  *placeDoc  `yaml:"place"`
}

type flexDoc struct {
	Direction string    `yaml:"direction"`
	Gap       float64   `yaml:"gap"`
	Wrap      bool      `yaml:"wrap"`
	Justify   string    `yaml:"justify"`
	Align     string    `yaml:"align"`
	Hidden    bool      `yaml:"hidden"`
	Style     *styleDoc `yaml:"style"`
	Children  []nodeDoc `yaml:"children"`
}

type gridDoc struct {
	Columns        []string  `yaml:"columns"`
	Rows           []string  `yaml:"rows"`
	ColumnGap      float64   `yaml:"columnGap"`
	RowGap         float64   `yaml:"rowGap"`
	Flow           string    `yaml:"flow"`
	JustifyItems   string    `yaml:"justifyItems"`
	AlignItems     string    `yaml:"alignItems"`
	JustifyContent string    `yaml:"justifyContent"`
	AlignContent   string    `yaml:"alignContent"`
	Hidden         bool      `yaml:"hidden"`
	Style          *styleDoc `yaml:"style"`
	Children       []nodeDoc `yaml:"children"`
}

type boxDoc struct {
	Width  string    `yaml:"width"`
	Height string    `yaml:"height"`
	Color  string    `yaml:"color"`
	Hidden bool      `yaml:"hidden"`
	Style  *styleDoc `yaml:"style"`
}

type labelDoc struct {
	Text   string `yaml:"text"`
	Hidden bool   `yaml:"hidden"`
}

type spacerDoc struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Flexible bool    `yaml:"flexible"`
}

type placeDoc struct {
	Row     *int `yaml:"row"`
	Col     *int `yaml:"col"`
	RowSpan int  `yaml:"rowSpan"`
	ColSpan int  `yaml:"colSpan"`
}

type styleDoc struct {
	Width   string    `yaml:"width"`
	Height  string    `yaml:"height"`
	Margin  *edgesDoc `yaml:"margin"`
	Padding *edgesDoc `yaml:"padding"`
}

type edgesDoc struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// Load reads and builds the UI document at path.
func Load(path string) (layout.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("uidl.Load", errors.KindDocument, err)
	}
	root, err := Parse(data)
	if err != nil {
		var docErr *errors.DocumentError
		if stderrors.As(err, &docErr) {
			docErr.Path = path
		}
		return nil, err
	}
	return root, nil
}

// Parse builds the UI document held in data.
func Parse(data []byte) (layout.Node, error) {
	var doc nodeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap("uidl.Parse", errors.KindDocument, err)
	}
	root, err := buildNode(&doc, "root", false)
	if err != nil {
		return nil, errors.Wrap("uidl.Parse", errors.KindDocument, err)
	}
	return root, nil
}

// buildNode converts one document node. loc is the slash-separated
// location for error reporting; inGrid legalizes the place block.
func buildNode(doc *nodeDoc, loc string, inGrid bool) (layout.Node, error) {
	if n := kindCount(doc); n != 1 {
		return nil, nodeErr(loc, fmt.Errorf("want exactly one of flex, grid, box, label or spacer, got %d", n))
	}
	if doc.Place != nil && !inGrid {
		return nil, nodeErr(loc, fmt.Errorf("place is only valid on grid children"))
	}

	switch {
	case doc.Flex != nil:
		return buildFlex(doc.Flex, loc+"/flex")
	case doc.Grid != nil:
		return buildGrid(doc.Grid, loc+"/grid")
	case doc.Box != nil:
		return buildBox(doc.Box, loc+"/box")
	case doc.Label != nil:
		l := widgets.NewLabel(doc.Label.Text)
		l.SetHidden(doc.Label.Hidden)
		return l, nil
	default:
		if doc.Spacer.Flexible {
			return widgets.NewFlexibleSpacer(), nil
		}
		return widgets.NewSpacer(doc.Spacer.Width, doc.Spacer.Height), nil
	}
}

func buildFlex(doc *flexDoc, loc string) (layout.Node, error) {
	dir, err := parseDirection(doc.Direction)
	if err != nil {
		return nil, nodeErr(loc+"/direction", err)
	}
	justify, err := parseJustify(doc.Justify)
	if err != nil {
		return nil, nodeErr(loc+"/justify", err)
	}
	align, err := parseAlign(doc.Align)
	if err != nil {
		return nil, nodeErr(loc+"/align", err)
	}
	style, err := buildStyle(doc.Style, loc+"/style")
	if err != nil {
		return nil, err
	}

	f := layout.NewFlexBox(style, dir)
	f.Gap = doc.Gap
	f.Wrap = doc.Wrap
	f.Justify = justify
	f.Align = align
	f.SetHidden(doc.Hidden)

	for i := range doc.Children {
		child, err := buildNode(&doc.Children[i], fmt.Sprintf("%s/children[%d]", loc, i), false)
		if err != nil {
			return nil, err
		}
		f.Add(child)
	}
	return f, nil
}

func buildGrid(doc *gridDoc, loc string) (layout.Node, error) {
	columns, err := parseSpecList(doc.Columns, loc, "columns")
	if err != nil {
		return nil, err
	}
	rows, err := parseSpecList(doc.Rows, loc, "rows")
	if err != nil {
		return nil, err
	}
	flow, err := parseFlow(doc.Flow)
	if err != nil {
		return nil, nodeErr(loc+"/flow", err)
	}
	justifyItems, err := parseAlign(doc.JustifyItems)
	if err != nil {
		return nil, nodeErr(loc+"/justifyItems", err)
	}
	alignItems, err := parseAlign(doc.AlignItems)
	if err != nil {
		return nil, nodeErr(loc+"/alignItems", err)
	}
	justifyContent, err := parseJustify(doc.JustifyContent)
	if err != nil {
		return nil, nodeErr(loc+"/justifyContent", err)
	}
	alignContent, err := parseJustify(doc.AlignContent)
	if err != nil {
		return nil, nodeErr(loc+"/alignContent", err)
	}
	style, err := buildStyle(doc.Style, loc+"/style")
	if err != nil {
		return nil, err
	}

	g := layout.NewGrid(style, columns, rows)
	g.ColumnGap = doc.ColumnGap
	g.RowGap = doc.RowGap
	g.Flow = flow
	g.JustifyItems = justifyItems
	g.AlignItems = alignItems
	g.JustifyContent = justifyContent
	g.AlignContent = alignContent
	g.SetHidden(doc.Hidden)

	for i := range doc.Children {
		childLoc := fmt.Sprintf("%s/children[%d]", loc, i)
		child, err := buildNode(&doc.Children[i], childLoc, true)
		if err != nil {
			return nil, err
		}
		g.Add(child)
		if p := doc.Children[i].Place; p != nil {
			g.Place(child, buildPlacement(p))
		}
	}
	return g, nil
}

func buildPlacement(doc *placeDoc) layout.GridPlacement {
	p := layout.GridPlacement{Row: -1, Col: -1, RowSpan: doc.RowSpan, ColSpan: doc.ColSpan}
	if doc.Row != nil {
		p.Row = *doc.Row
	}
	if doc.Col != nil {
		p.Col = *doc.Col
	}
	return p
}

func buildBox(doc *boxDoc, loc string) (layout.Node, error) {
	style, err := buildStyle(doc.Style, loc+"/style")
	if err != nil {
		return nil, err
	}
	// Shorthand width/height override the matching style fields.
	if doc.Width != "" || doc.Height != "" {
		if style == nil {
			style = &layout.Style{Width: layout.AutoSpec(), Height: layout.AutoSpec()}
		}
		if doc.Width != "" {
			if style.Width, err = parseSpec(doc.Width); err != nil {
				return nil, nodeErr(loc+"/width", err)
			}
		}
		if doc.Height != "" {
			if style.Height, err = parseSpec(doc.Height); err != nil {
				return nil, nodeErr(loc+"/height", err)
			}
		}
	}

	b := widgets.NewStyledBox(style)
	b.SetHidden(doc.Hidden)
	if doc.Color != "" {
		color, err := parseColor(doc.Color)
		if err != nil {
			return nil, nodeErr(loc+"/color", err)
		}
		b.Color = color
	}
	return b, nil
}

func buildStyle(doc *styleDoc, loc string) (*layout.Style, error) {
	if doc == nil {
		return nil, nil
	}
	width, err := parseSpec(doc.Width)
	if err != nil {
		return nil, nodeErr(loc+"/width", err)
	}
	height, err := parseSpec(doc.Height)
	if err != nil {
		return nil, nodeErr(loc+"/height", err)
	}
	margin, err := buildEdges(doc.Margin, loc+"/margin")
	if err != nil {
		return nil, err
	}
	padding, err := buildEdges(doc.Padding, loc+"/padding")
	if err != nil {
		return nil, err
	}
	return &layout.Style{Width: width, Height: height, Margin: margin, Padding: padding}, nil
}

func buildEdges(doc *edgesDoc, loc string) (layout.EdgeSpecs, error) {
	var edges layout.EdgeSpecs
	if doc == nil {
		return edges, nil
	}
	var err error
	if edges.Left, err = parseEdge(doc.Left); err != nil {
		return edges, nodeErr(loc+"/left", err)
	}
	if edges.Right, err = parseEdge(doc.Right); err != nil {
		return edges, nodeErr(loc+"/right", err)
	}
	if edges.Top, err = parseEdge(doc.Top); err != nil {
		return edges, nodeErr(loc+"/top", err)
	}
	if edges.Bottom, err = parseEdge(doc.Bottom); err != nil {
		return edges, nodeErr(loc+"/bottom", err)
	}
	return edges, nil
}

func kindCount(doc *nodeDoc) int {
	n := 0
	if doc.Flex != nil {
		n++
	}
	if doc.Grid != nil {
		n++
	}
	if doc.Box != nil {
		n++
	}
	if doc.Label != nil {
		n++
	}
	if doc.Spacer != nil {
		n++
	}
	return n
}
