// SPDX-License-Identifier: MIT

// Package plotting renders scree charts of explained variance with gonum/plot.
package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoVariance is returned when there is nothing to plot.
var ErrNoVariance = errors.New("plotting: empty or non-finite variance")

var (
	barColor  = color.RGBA{R: 0x6a, G: 0x5a, B: 0xcd, A: 0xff}
	lineColor = color.RGBA{R: 0xe0, G: 0x6c, B: 0x3c, A: 0xff}
)

// Scree builds a chart with one bar per component (explained variance ratio)
// and a line for the cumulative ratio. With total <= 0 the ratios are all zero.
func Scree(title string, variance []float64, total float64) (*plot.Plot, error) {
	if len(variance) == 0 {
		return nil, ErrNoVariance
	}
	ratios := make(plotter.Values, len(variance))
	cum := make(plotter.XYs, len(variance))
	names := make([]string, len(variance))
	run := 0.0
	for i, v := range variance {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("component %d: %w", i+1, ErrNoVariance)
		}
		if total > 0 {
			ratios[i] = v / total
		}
		run += ratios[i]
		cum[i] = plotter.XY{X: float64(i), Y: run}
		names[i] = fmt.Sprintf("PC%d", i+1)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "component"
	p.Y.Label.Text = "explained variance ratio"
	p.Y.Min = 0
	p.Y.Max = 1

	bars, err := plotter.NewBarChart(ratios, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("plotting: bars: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	line, points, err := plotter.NewLinePoints(cum)
	if err != nil {
		return nil, fmt.Errorf("plotting: cumulative: %w", err)
	}
	line.Color = lineColor
	points.Color = lineColor

	p.Add(bars, line, points)
	p.Legend.Add("ratio", bars)
	p.Legend.Add("cumulative", line, points)
	p.Legend.Top = true
	p.NominalX(names...)

	return p, nil
}

// Write encodes p in format ("png", "svg", "pdf", ...) at the given size in centimetres.
func Write(w io.Writer, p *plot.Plot, widthCM, heightCM float64, format string) error {
	wt, err := p.WriterTo(vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter, format)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("plotting: write %s: %w", format, err)
	}
	return nil
}

// Save writes p to path; the format follows the file extension.
func Save(path string, p *plot.Plot, widthCM, heightCM float64) error {
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		return fmt.Errorf("plotting: %s: missing file extension", path)
	}
	if err := p.Save(vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter, path); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	return nil
}
