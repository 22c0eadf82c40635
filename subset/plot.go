// SPDX-License-Identifier: MIT
//
// File: plot.go
// Role: hand-off of sampled curves to an external renderer.

package subset

// PlotOptions carries rendering hints; interpretation is up to the Plotter.
type PlotOptions struct {
	// Label names the curve (legend entry).
	Label string
	// Verbose asks the renderer to annotate characteristic points.
	Verbose bool
	// Marks are the characteristic points, filled in by Plot when Verbose
	// is set and the subset is a Marker.
	Marks []Pair
}

// Plotter renders a sampled membership curve.
type Plotter interface {
	Plot(samples []Pair, opts PlotOptions) error
}

// Plot samples s over its domain and passes the curve to p.
func Plot(p Plotter, s Set, opts PlotOptions) error {
	if m, ok := s.(Marker); ok && opts.Verbose && opts.Marks == nil {
		opts.Marks = m.Marks()
	}

	return p.Plot(Sample(s), opts)
}
