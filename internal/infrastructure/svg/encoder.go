// Package svg writes panel paths as standalone SVG documents.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/swipenav/internal/domain/entity"
)

// Options controls coordinate formatting.
type Options struct {
	// MaxPrecision is the number of decimals kept per coordinate. 0 keeps
	// the shortest exact representation.
	MaxPrecision int
}

// PathData converts a path to SVG path commands.
func PathData(p entity.Path, opts Options) string {
	var sb strings.Builder
	_ = WritePathData(&sb, p, opts)
	return sb.String()
}

// WritePathData writes the SVG path commands of p to w.
func WritePathData(w io.Writer, p entity.Path, opts Options) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := opts.format

	for i, el := range p {
		if i > 0 {
			writef(" ")
		}
		switch el.Kind {
		case entity.MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case entity.LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case entity.CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case entity.ClosePathKind:
			writef("Z")
		default:
			return fmt.Errorf("unknown path element kind %d", el.Kind)
		}
	}
	return err
}

func (opts Options) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Encode writes a standalone SVG document of size panel containing the curve
// as a filled path and the arrow as a stroked open path. Empty paths are
// omitted.
func Encode(w io.Writer, pair entity.PathPair, panel entity.Size, style entity.PanelStyle, opts Options) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := opts.format

	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		format(panel.Width), format(panel.Height), format(panel.Width), format(panel.Height))
	if !pair.Curve.IsEmpty() {
		writef(`  <path d="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			PathData(pair.Curve, opts), style.Fill.Hex(), format(style.FillOpacity))
	}
	if !pair.Arrow.IsEmpty() {
		writef(`  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			PathData(pair.Arrow, opts), style.Arrow.Hex(), format(style.ArrowLineWidth))
	}
	writef("</svg>\n")
	return err
}
