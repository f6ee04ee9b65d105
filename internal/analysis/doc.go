// Package analysis characterizes recorded or freshly simulated orbits.
//
//   - [Diverge]: separation growth between a universe and a perturbed copy
//   - [PowerSpectrum]: magnitude spectrum of a sampled coordinate
//   - [DominantPeriod]: strongest oscillation period of a coordinate series
//   - [Track]: extract one body's coordinates from recorded frames
//
// # Sensitivity
//
// A positive divergence rate means a tiny displacement of one body grows
// tick over tick:
//
//	d, err := analysis.Diverge(u, 0, 1e-6, 2000)
//	if err == nil && d.Rate > 0 {
//	    // nearby orbits separate
//	}
package analysis
