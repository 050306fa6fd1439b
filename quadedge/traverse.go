package quadedge

// An EdgeIterator walks every directed primal edge reachable from a set of
// seed edges exactly once. It expands one Onext ring at a time, breadth first,
// queueing the Sym of each edge it yields so that the ring around the other
// endpoint is visited later. Iteration is lazy and cannot be restarted.
// Behavior is undefined if the graph is modified during iteration.
type EdgeIterator struct {
	queue  []Edge
	seen   map[Edge]struct{}
	start  Edge
	cur    Edge
	inRing bool
}

// Traverse returns an iterator over the structures containing the seeds. Zero
// seeds are ignored. Dual seeds are an invariant violation.
func Traverse(seeds ...Edge) *EdgeIterator {
	iter := &EdgeIterator{seen: make(map[Edge]struct{})}
	for _, seed := range seeds {
		if seed.IsZero() {
			continue
		}
		if !seed.Primal() {
			invariantf("traversal seeded with dual edge %s", seed)
		}
		iter.queue = append(iter.queue, seed)
	}
	return iter
}

func (iter *EdgeIterator) Next() (Edge, bool) {
	for !iter.inRing {
		if len(iter.queue) == 0 {
			return Edge{}, false
		}
		e := iter.queue[0]
		iter.queue = iter.queue[1:]
		// Rings are always walked in full, so one seen edge means the whole
		// ring has been yielded already.
		if _, ok := iter.seen[e]; ok {
			continue
		}
		iter.start, iter.cur, iter.inRing = e, e, true
	}

	e := iter.cur
	iter.seen[e] = struct{}{}
	if sym := e.Sym(); !iter.isSeen(sym) {
		iter.queue = append(iter.queue, sym)
	}
	iter.cur = e.Onext()
	if iter.cur == iter.start {
		iter.inRing = false
	}
	return e, true
}

func (iter *EdgeIterator) isSeen(e Edge) bool {
	_, ok := iter.seen[e]
	return ok
}

// Chan drains the iterator from a goroutine. This gives a nicer API for
// ranging over edges. Closing done stops the goroutine when the caller quits
// early. A nil done is never closed, so the channel must then be drained.
func (iter *EdgeIterator) Chan(done <-chan struct{}) <-chan Edge {
	ch := make(chan Edge)
	go func() {
		defer close(ch)
		for {
			select {
			case <-done:
				return
			default:
			}
			e, ok := iter.Next()
			if !ok {
				return
			}
			select {
			case ch <- e:
			case <-done:
				return
			}
		}
	}()
	return ch
}

// Collect drains the iterator into a slice.
func (iter *EdgeIterator) Collect() []Edge {
	var edges []Edge
	for {
		e, ok := iter.Next()
		if !ok {
			return edges
		}
		edges = append(edges, e)
	}
}
