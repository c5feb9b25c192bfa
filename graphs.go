package main

import (
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	//exposes "chart"
)

// Line plot of code width against emission index, showing how the
// adaptive width climbs as the dictionary grows.
func GraphWidths(path string, widths []int) error {
	xvals := make([]float64, 0, len(widths))
	yvals := make([]float64, 0, len(widths))
	for i, w := range widths {
		xvals = append(xvals, float64(i))
		yvals = append(yvals, float64(w))
	}
	graph := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	err = graph.Render(chart.SVG, fh)
	if err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// Scatter plot for X, Y ints
func ScatterIntMap(path string, results map[int]int) error {
	// Create sorted list
	keys := make([]int, 0)
	for i := range results {
		keys = append(keys, i)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	// Convert map to 2 arrays
	xvals := make([]float64, 0)
	yvals := make([]float64, 0)
	for i := range keys {
		xvals = append(xvals, float64(keys[i]))
		yvals = append(yvals, float64(results[keys[i]]))
	}
	graph := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	err = graph.Render(chart.SVG, fh)
	if err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
