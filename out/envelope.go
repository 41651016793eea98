// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/StructuralTools/goloads/loads"
	"github.com/StructuralTools/goloads/unit"
	"github.com/cpmech/gosl/chk"
)

// points converts an array quantity to XY pairs against the station index
func points(q unit.Quantity) plotter.XYs {
	pts := make(plotter.XYs, q.Len())
	for i, v := range q.Values() {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}

// SaveEnvelopes saves a line chart of the three envelopes against the station
// index. The image format follows the filename extension (.png, .svg, .pdf);
// without an extension a .png is written. Scalar results have no stations to
// draw and are rejected.
func SaveEnvelopes(fl *loads.FactoredLoads, filename string) error {
	if !fl.MaxEnvelope.IsArray() {
		return chk.Err("cannot draw envelopes of scalar results; see the extremes in the report instead")
	}

	p := plot.New()
	p.Title.Text = "Load Combination Envelopes"
	p.X.Label.Text = "Station"
	p.Y.Label.Text = "Factored load"
	if u := fl.MaxEnvelope.Unit(); u != "" {
		p.Y.Label.Text += " (" + u + ")"
	}

	maxLine, err := plotter.NewLine(points(fl.MaxEnvelope))
	if err != nil {
		return err
	}
	maxLine.LineStyle.Width = vg.Points(2)
	maxLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(maxLine)
	p.Legend.Add("max", maxLine)

	minLine, err := plotter.NewLine(points(fl.MinEnvelope))
	if err != nil {
		return err
	}
	minLine.LineStyle.Width = vg.Points(2)
	minLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(minLine)
	p.Legend.Add("min", minLine)

	absLine, err := plotter.NewLine(points(fl.AbsMaxEnvelope))
	if err != nil {
		return err
	}
	absLine.LineStyle.Width = vg.Points(1.5)
	absLine.LineStyle.Color = color.Gray{Y: 96}
	absLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(absLine)
	p.Legend.Add("abs max", absLine)

	p.Legend.Top = true

	// create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
