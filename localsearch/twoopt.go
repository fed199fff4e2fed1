package localsearch

import "golang.org/x/sync/errgroup"

// twoOptMove is a candidate 2-opt move: replace edges (a,b) and (c,d) with
// (a,c) and (b,d), a < c.
type twoOptMove struct {
	gain int64
	a, c int
}

// TwoOptStep scans every 2-opt candidate exactly once, using Threads()
// workers over the triangular partition, and applies the best
// strictly-positive-gain move found. Returns the gain applied, or 0 if no
// move improves the tour.
//
// Meaningless below N=4 (every candidate hits an adjacency skip); returns 0
// immediately in that case.
//
// Complexity: O(N^2/T) scan per worker, O(N) to apply the winning move.
func (e *Engine) TwoOptStep() int64 {
	if e.size < 4 {
		return 0
	}

	results := make([]twoOptMove, e.threads)
	var g errgroup.Group
	for k := 0; k < e.threads; k++ {
		k := k
		g.Go(func() error {
			results[k] = e.scanTwoOpt(e.triangular[k])
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
	e.applyTwoOpt(win.a, win.c)
	return win.gain
}

// scanTwoOpt finds the best 2-opt move with outer anchor in r, following
// canonical order: a increasing, c increasing for each a. The first
// strictly-better candidate found wins any internal tie.
func (e *Engine) scanTwoOpt(r Range) twoOptMove {
	var best twoOptMove
	n := e.size
	for a := r.Start; a < r.End; a++ {
		b := e.next[a]
		for c := a + 1; c < n; c++ {
			d := e.next[c]
			if b == c || d == a {
				continue
			}
			gain := e.dist.At(a, b) + e.dist.At(c, d) - e.dist.At(a, c) - e.dist.At(b, d)
			if gain > best.gain {
				best = twoOptMove{gain: gain, a: a, c: c}
			}
		}
	}
	return best
}

// applyTwoOpt reverses the directed path from b=next[a] to c, so that c
// follows a, each formerly-collected vertex points to its predecessor, and
// d=next[c] (pre-move) follows b.
func (e *Engine) applyTwoOpt(a, c int) {
	b := e.next[a]
	d := e.next[c]

	path := []int{b}
	for v := b; v != c; {
		v = e.next[v]
		path = append(path, v)
	}

	e.next[a] = c
	for i := len(path) - 1; i > 0; i-- {
		e.next[path[i]] = path[i-1]
	}
	e.next[b] = d
}

// PerformAllTwoOptSteps calls TwoOptStep until it returns 0, returning the
// accumulated gain and the sequence of individual step gains.
func (e *Engine) PerformAllTwoOptSteps() (int64, []int64) {
	var total int64
	var gains []int64
	for {
		g := e.TwoOptStep()
		if g == 0 {
			return total, gains
		}
		total += g
		gains = append(gains, g)
	}
}
