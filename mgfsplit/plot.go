// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/mgfsplit/balance"
	"github.com/biogo/mgfsplit/ptm"
)

// compositionPlot returns a stacked bar chart with one bar per split and
// one stack segment per label in order.
func compositionPlot(comp []balance.Composition, order []ptm.Label) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Split composition"
	p.X.Label.Text = "Split file"
	p.Y.Label.Text = "Spectra"
	p.Legend.Top = true

	var below *plotter.BarChart
	for i, l := range order {
		v := make(plotter.Values, len(comp))
		for j, c := range comp {
			v[j] = float64(c[l])
		}
		bars, err := plotter.NewBarChart(v, vg.Points(10))
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(string(l), bars)
		below = bars
	}

	names := make([]string, len(comp))
	for i := range names {
		names[i] = fmt.Sprintf("%03d", i+1)
	}
	p.NominalX(names...)
	return p, nil
}

// plotComposition saves the composition chart to file, choosing the
// format from its extension.
func plotComposition(file string, comp []balance.Composition, order []ptm.Label) error {
	p, err := compositionPlot(comp, order)
	if err != nil {
		return err
	}
	width := vg.Length(len(comp)) * vg.Points(14)
	if width < 6*vg.Inch {
		width = 6 * vg.Inch
	}
	return p.Save(width, 4*vg.Inch, file)
}
