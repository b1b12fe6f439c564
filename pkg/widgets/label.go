package widgets

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-strut/strut/pkg/layout"
)

// Label is a text leaf. Its natural size comes from font metrics, measured
// once per text or face change - before any layout pass reads it - so the
// engine sees a fixed natural size, per the no-shaping contract of
// pkg/layout.
//
// The zero value is unusable; create labels with [NewLabel].
type Label struct {
	layout.Element
	text string
	face font.Face
}

// NewLabel returns a label measured with the bundled fixed-width face.
func NewLabel(text string) *Label {
	return NewLabelWithFace(text, basicfont.Face7x13)
}

// NewLabelWithFace returns a label measured with the given face.
func NewLabelWithFace(text string, face font.Face) *Label {
	l := &Label{face: face}
	l.SetText(text)
	return l
}

// Text returns the label's content.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the content and remeasures the natural size.
func (l *Label) SetText(text string) {
	l.text = text
	l.measure()
}

// measure computes the natural size: the widest line's advance by the
// line count times the face's line height.
func (l *Label) measure() {
	metrics := l.face.Metrics()
	lineHeight := float64(metrics.Height.Ceil())

	lines := strings.Split(l.text, "\n")
	widest := 0.0
	for _, line := range lines {
		if w := float64(font.MeasureString(l.face, line).Ceil()); w > widest {
			widest = w
		}
	}
	l.SetSize(widest, lineHeight*float64(len(lines)))
}
