package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/orbitsim/internal/sim"
)

// PowerSpectrum returns the magnitudes of the first half of the DFT of data
// after removing its mean.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-constant
// component of data. It returns 0 when data has no oscillation.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	peak, best := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			peak, best = k, ps[k]
		}
	}
	if peak == 0 || best < 1e-9 {
		return 0
	}
	return float64(len(data)) / float64(peak)
}

// Track returns the X and Y coordinates of one body across frames, stopping
// at the first non-finite position.
func Track(frames []sim.Frame, body int) (xs, ys []float64) {
	xs = make([]float64, 0, len(frames))
	ys = make([]float64, 0, len(frames))
	for _, f := range frames {
		if body >= len(f.Bodies) {
			break
		}
		p := f.Bodies[body].Pos
		if !p.IsFinite() {
			break
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}
