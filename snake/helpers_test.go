package snake

import "testing"

// seqRandom replays vals in a loop, reduced modulo the requested bound.
type seqRandom struct {
	vals []int
	i    int
}

func (r *seqRandom) Uint(bound int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % bound
}

const never = 1 << 20

func newTestWorld(t *testing.T, size, spawn int, opts ...Option) *WorldMap {
	t.Helper()
	opts = append([]Option{WithRandom(&seqRandom{}), WithClock(FixedClock(0))}, opts...)
	w, err := New(size, spawn, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d) error: %v", size, spawn, err)
	}
	return w
}

// quiet pushes every countdown far away so only the entities a test places
// by hand take part.
func quiet(w *WorldMap) {
	w.trapSteps = never
	w.superBonusSteps = never
	w.stepsToMovingTarget = never
	w.steps = never
}

func equalCells(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
