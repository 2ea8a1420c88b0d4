package bm25

import "github.com/hupe1980/sparsevec/lexical"

// worse reports whether a ranks below b: lower score, or equal score and
// higher id.
func worse(a, b lexical.Result) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.ID > b.ID
}

// resultHeap is a min-heap with the worst retained result at the root.
type resultHeap []lexical.Result

func (h *resultHeap) push(r lexical.Result) {
	*h = append(*h, r)
	h.up(len(*h) - 1)
}

func (h *resultHeap) pop() lexical.Result {
	old := *h
	n := len(old) - 1
	root := old[0]
	old[0] = old[n]
	*h = old[:n]
	h.down(0, len(*h))
	return root
}

// offer keeps r if the heap holds fewer than k results or r beats the root.
func (h *resultHeap) offer(r lexical.Result, k int) {
	if len(*h) < k {
		h.push(r)
		return
	}
	if worse((*h)[0], r) {
		(*h)[0] = r
		h.down(0, len(*h))
	}
}

func (h resultHeap) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !worse(h[j], h[i]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		j = i
	}
}

func (h resultHeap) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && worse(h[j2], h[j1]) {
			j = j2 // right child
		}
		if !worse(h[j], h[i]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
}
