package layout

// resolveTracks computes pixel sizes for a lane of tracks (grid rows or
// columns) from their specs, the total space on that axis, and the gap
// between neighbouring tracks.
//
// Fixed entries (pixels, percent) resolve immediately against the space
// left after gaps; every flexible entry receives an equal share of the
// remainder, clamped to zero when fixed entries oversubscribe the axis.
// The result is order-independent and never negative, and the sum of sizes
// plus gaps never exceeds totalSpace (flexible tracks absorb the
// remainder).
//
// out is a grow-only scratch buffer owned by the caller; the resolved
// sizes are returned in it to keep the per-frame pass allocation-free.
func resolveTracks(specs []SizeSpec, totalSpace, gap float64, out []float64) []float64 {
	n := len(specs)
	out = growFloats(out, n)
	if n == 0 {
		return out
	}

	available := totalSpace - gap*float64(n-1)
	if available < 0 {
		available = 0
	}

	fixed := 0.0
	flexible := 0
	for i, spec := range specs {
		if spec.IsFlexible() {
			flexible++
			out[i] = -1 // settled below
			continue
		}
		out[i] = spec.Resolve(0, available, 0)
		fixed += out[i]
	}

	if flexible > 0 {
		remaining := available - fixed
		if remaining < 0 {
			remaining = 0
		}
		share := remaining / float64(flexible)
		for i := range out {
			if out[i] < 0 {
				out[i] = share
			}
		}
	}
	return out
}

// growFloats returns a zeroed float slice of length n, reusing buf's
// backing array when it is large enough.
func growFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// growSpecs returns a zero-length spec slice with capacity for n entries,
// reusing buf's backing array when it is large enough.
func growSpecs(buf []SizeSpec, n int) []SizeSpec {
	if cap(buf) < n {
		return make([]SizeSpec, 0, n)
	}
	return buf[:0]
}

// growBools returns a false-filled bool slice of length n, reusing buf's
// backing array when it is large enough.
func growBools(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = false
	}
	return buf
}
