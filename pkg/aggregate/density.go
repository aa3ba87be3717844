package aggregate

// Density returns the occupied fraction of the disk area, |cluster| / (π r²).
// It only ever grows as walks stick.
func (e *Engine) Density() float64 {
	return float64(e.cluster.Len()) / e.area()
}

// Reached reports whether the density has exceeded threshold. Stopping is the
// caller's policy; the engine never refuses a walk.
func (e *Engine) Reached(threshold float64) bool {
	return e.Density() > threshold
}
