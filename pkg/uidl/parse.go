package uidl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/layout"
)

// parseSpec reads a size-spec string. An empty string is Auto, matching
// the engine's treatment of an absent spec.
func parseSpec(s string) (layout.SizeSpec, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "auto":
		return layout.AutoSpec(), nil
	case "fill":
		return layout.FillSpec(), nil
	}
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return layout.SizeSpec{}, errors.New("uidl.parseSpec", errors.KindParse, "invalid percentage %q", s)
		}
		return layout.Pct(v), nil
	}
	rest := strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return layout.SizeSpec{}, errors.New("uidl.parseSpec", errors.KindParse,
			"invalid size %q (want \"<n>px\", \"<n>%%\", \"auto\" or \"fill\")", s)
	}
	return layout.Px(v), nil
}

// parseEdge reads an edge spec. The zero value is zero pixels, not Auto;
// an absent edge contributes nothing to padding.
func parseEdge(s string) (layout.SizeSpec, error) {
	if strings.TrimSpace(s) == "" {
		return layout.Px(0), nil
	}
	return parseSpec(s)
}

func parseDirection(s string) (layout.Direction, error) {
	switch s {
	case "", "row":
		return layout.Row, nil
	case "column":
		return layout.Column, nil
	}
	return 0, errors.New("uidl.parseDirection", errors.KindParse,
		"invalid direction %q (want row or column)", s)
}

func parseFlow(s string) (layout.AutoFlow, error) {
	switch s {
	case "", "row":
		return layout.FlowRow, nil
	case "column":
		return layout.FlowColumn, nil
	}
	return 0, errors.New("uidl.parseFlow", errors.KindParse,
		"invalid flow %q (want row or column)", s)
}

func parseJustify(s string) (layout.Justify, error) {
	switch s {
	case "", "start":
		return layout.JustifyStart, nil
	case "end":
		return layout.JustifyEnd, nil
	case "center":
		return layout.JustifyCenter, nil
	case "space-between":
		return layout.JustifySpaceBetween, nil
	case "space-around":
		return layout.JustifySpaceAround, nil
	case "space-evenly":
		return layout.JustifySpaceEvenly, nil
	}
	return 0, errors.New("uidl.parseJustify", errors.KindParse,
		"invalid justify %q (want start, end, center, space-between, space-around or space-evenly)", s)
}

func parseAlign(s string) (layout.Align, error) {
	switch s {
	case "", "start":
		return layout.AlignStart, nil
	case "end":
		return layout.AlignEnd, nil
	case "center":
		return layout.AlignCenter, nil
	case "stretch":
		return layout.AlignStretch, nil
	}
	return 0, errors.New("uidl.parseAlign", errors.KindParse,
		"invalid align %q (want start, end, center or stretch)", s)
}

// parseColor reads "#RRGGBB" or "#AARRGGBB" into 0xAARRGGBB. A missing
// alpha reads as opaque.
func parseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, errors.New("uidl.parseColor", errors.KindParse, "invalid color %q", s)
	}
	switch len(hex) {
	case 6:
		return 0xFF000000 | uint32(v), nil
	case 8:
		return uint32(v), nil
	}
	return 0, errors.New("uidl.parseColor", errors.KindParse,
		"invalid color %q (want #RRGGBB or #AARRGGBB)", s)
}

func parseSpecList(specs []string, loc, field string) ([]layout.SizeSpec, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]layout.SizeSpec, len(specs))
	for i, s := range specs {
		spec, err := parseSpec(s)
		if err != nil {
			return nil, nodeErr(fmt.Sprintf("%s/%s[%d]", loc, field, i), err)
		}
		out[i] = spec
	}
	return out, nil
}

// nodeErr pins an error to a document location.
func nodeErr(loc string, err error) error {
	return &errors.DocumentError{Node: loc, Err: err}
}
