// Package iochart draws median lines of the two cohorts with gonum/plot.
package iochart

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/gnames/cfazone/pkg/median"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	cfaColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	noncfaColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// Build creates a line chart of CFA and Non-CFA medians by year. Columns
// are the output of median.Columns.
func Build(
	cols map[string][]float64,
	label, unit string,
) (*plot.Plot, error) {
	years := cols[median.ColYear]
	cfa := cols[median.ColCFAMedian]
	noncfa := cols[median.ColNonCFAMedian]
	if len(years) == 0 || len(cfa) != len(years) ||
		len(noncfa) != len(years) {
		return nil, BuildError(label, ErrBadColumns)
	}

	p := plot.New()
	p.Title.Text = label
	p.X.Label.Text = "Year"
	p.Y.Label.Text = unit
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "Median"
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	lines := []struct {
		name  string
		vals  []float64
		color color.Color
	}{
		{"African CFA Zone Countries", cfa, cfaColor},
		{"Non-CFA Middle and Western Africa Countries", noncfa, noncfaColor},
	}

	for _, v := range lines {
		pts := make(plotter.XYs, len(years))
		for i := range years {
			pts[i].X = years[i]
			pts[i].Y = v.vals[i]
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, BuildError(label, err)
		}
		line.Color = v.color
		line.Width = vg.Points(1.5)
		points.Shape = draw.CircleGlyph{}
		points.Color = v.color
		points.Radius = vg.Points(1.5)

		p.Add(line, points)
		p.Legend.Add(v.name, line, points)
	}

	return p, nil
}

// Save writes the chart to a file. The format is taken from the file
// extension ('.png' or '.svg'). Width and height are in centimeters.
func Save(p *plot.Plot, path string, widthCM, heightCM int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".svg" {
		return SaveError(path, ErrFormat)
	}

	w := vg.Length(widthCM) * vg.Centimeter
	h := vg.Length(heightCM) * vg.Centimeter
	if err := p.Save(w, h, path); err != nil {
		return SaveError(path, err)
	}
	return nil
}

// FileName returns a file name for the chart of an indicator.
func FileName(indicator, format string) string {
	name := strings.ToLower(indicator)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
	return name + "_medians." + format
}
