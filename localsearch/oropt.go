package localsearch

import "golang.org/x/sync/errgroup"

// orOptMove is a candidate or-opt move: remove the consecutive pair
// (b, m) = (next[a], next[next[a]]) and reinsert it between c and
// d=next[c].
type orOptMove struct {
	gain int64
	a, c int
}

// OrOptStep scans every or-opt candidate exactly once, using Threads()
// workers over the uniform partition, and applies the best
// strictly-positive-gain move found. Returns the gain applied, or 0 if no
// move improves the tour.
//
// Meaningless below N=4; returns 0 immediately in that case.
//
// Complexity: O(N^2/T) scan per worker, O(1) to apply the winning move.
func (e *Engine) OrOptStep() int64 {
	if e.size < 4 {
		return 0
	}

	results := make([]orOptMove, e.threads)
	var g errgroup.Group
	for k := 0; k < e.threads; k++ {
		k := k
		g.Go(func() error {
			results[k] = e.scanOrOpt(e.uniform[k])
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
	e.applyOrOpt(win.a, win.c)
	return win.gain
}

// scanOrOpt finds the best or-opt move with outer anchor in r. The inner
// candidate c walks next starting at n2=next[m] until it returns to a,
// which is exactly the vertex set excluding {a, b, m}. The internal edge
// (b, m) is preserved and cancels out of the gain. The first
// strictly-better candidate found wins any internal tie.
func (e *Engine) scanOrOpt(r Range) orOptMove {
	var best orOptMove
	for a := r.Start; a < r.End; a++ {
		b := e.next[a]
		m := e.next[b]
		n2 := e.next[m]
		for c := n2; c != a; c = e.next[c] {
			d := e.next[c]
			gain := e.dist.At(a, b) + e.dist.At(m, n2) + e.dist.At(c, d) -
				e.dist.At(a, n2) - e.dist.At(c, b) - e.dist.At(m, d)
			if gain > best.gain {
				best = orOptMove{gain: gain, a: a, c: c}
			}
		}
	}
	return best
}

// applyOrOpt removes the pair (b, m) = (next[a], next[next[a]]) and
// reinserts it, in the same order, between c and d=next[c].
func (e *Engine) applyOrOpt(a, c int) {
	b := e.next[a]
	m := e.next[b]
	n2 := e.next[m]
	d := e.next[c]
	e.next[a] = n2
	e.next[m] = d
	e.next[c] = b
}

// PerformAllOrOptSteps calls OrOptStep until it returns 0, returning the
// accumulated gain and the sequence of individual step gains.
func (e *Engine) PerformAllOrOptSteps() (int64, []int64) {
	var total int64
	var gains []int64
	for {
		g := e.OrOptStep()
		if g == 0 {
			return total, gains
		}
		total += g
		gains = append(gains, g)
	}
}
