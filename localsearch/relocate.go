package localsearch

import "golang.org/x/sync/errgroup"

// relocateMove is a candidate relocate move: remove b=next[a] and reinsert
// it between c and d=next[c].
type relocateMove struct {
	gain int64
	a, c int
}

// RelocateStep scans every relocate candidate exactly once, using
// Threads() workers over the uniform partition, and applies the best
// strictly-positive-gain move found. Returns the gain applied, or 0 if no
// move improves the tour.
//
// Meaningless below N=3; returns 0 immediately in that case.
//
// Complexity: O(N^2/T) scan per worker, O(1) to apply the winning move.
func (e *Engine) RelocateStep() int64 {
	if e.size < 3 {
		return 0
	}

	results := make([]relocateMove, e.threads)
	var g errgroup.Group
	for k := 0; k < e.threads; k++ {
		k := k
		g.Go(func() error {
			results[k] = e.scanRelocate(e.uniform[k])
			return nil
		})
	}
	_ = g.Wait()

	best := -1
	for k, r := range results {
		if r.gain > 0 && (best == -1 || r.gain > results[best].gain) {
			best = k
		}
	}
	if best == -1 {
		return 0
	}
	win := results[best]
	e.applyRelocate(win.a, win.c)
	return win.gain
}

// scanRelocate finds the best relocate move with outer anchor in r. The
// inner candidate c walks next starting at n=next[b] until it returns to
// a, which is exactly the vertex set excluding {a, b}. The first
// strictly-better candidate found wins any internal tie.
func (e *Engine) scanRelocate(r Range) relocateMove {
	var best relocateMove
	for a := r.Start; a < r.End; a++ {
		b := e.next[a]
		n := e.next[b]
		for c := n; c != a; c = e.next[c] {
			d := e.next[c]
			gain := e.dist.At(a, b) + e.dist.At(b, n) + e.dist.At(c, d) -
				e.dist.At(a, n) - e.dist.At(c, b) - e.dist.At(b, d)
			if gain > best.gain {
				best = relocateMove{gain: gain, a: a, c: c}
			}
		}
	}
	return best
}

// applyRelocate removes b=next[a] from between a and n=next[b], and
// reinserts it between c and d=next[c].
func (e *Engine) applyRelocate(a, c int) {
	b := e.next[a]
	n := e.next[b]
	d := e.next[c]
	e.next[a] = n
	e.next[c] = b
	e.next[b] = d
}

// PerformAllRelocateSteps calls RelocateStep until it returns 0, returning
// the accumulated gain and the sequence of individual step gains.
func (e *Engine) PerformAllRelocateSteps() (int64, []int64) {
	var total int64
	var gains []int64
	for {
		g := e.RelocateStep()
		if g == 0 {
			return total, gains
		}
		total += g
		gains = append(gains, g)
	}
}
