package bm25

import (
	"math"
	"sync"

	"github.com/hupe1980/sparsevec"
	"github.com/hupe1980/sparsevec/lexical"
)

const (
	defaultK1 = 1.2
	defaultB  = 0.75
)

type options struct {
	k1, b     float64
	tokenizer lexical.Tokenizer
	logger    *sparsevec.Logger
}

// Option configures a MemoryIndex.
type Option func(*options)

// WithParameters overrides the BM25 term saturation (k1) and length
// normalization (b) parameters.
func WithParameters(k1, b float64) Option {
	return func(o *options) {
		o.k1 = k1
		o.b = b
	}
}

// WithTokenizer configures the tokenizer for documents and queries.
//
// If nil is passed, lexical.DefaultTokenizer is used.
func WithTokenizer(t lexical.Tokenizer) Option {
	return func(o *options) {
		if t == nil {
			t = lexical.DefaultTokenizer
		}
		o.tokenizer = t
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *sparsevec.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = sparsevec.NoopLogger()
		}
		o.logger = l
	}
}

// MemoryIndex is a simple in-memory BM25 index.
//
// Every document is kept as its term-frequency vector. Document
// frequencies are counted in place, holding only terms that occur in at
// least one document.
type MemoryIndex struct {
	mu          sync.RWMutex
	opts        options
	docs        map[uint64]sparsevec.Vector[string, int]
	docLengths  map[uint64]int
	docFreq     sparsevec.Map[string, int]
	totalLength int64
}

// New creates a new MemoryIndex.
func New(optFns ...Option) *MemoryIndex {
	opts := options{
		k1:        defaultK1,
		b:         defaultB,
		tokenizer: lexical.DefaultTokenizer,
		logger:    sparsevec.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &MemoryIndex{
		opts:       opts,
		docs:       make(map[uint64]sparsevec.Vector[string, int]),
		docLengths: make(map[uint64]int),
		docFreq:    make(sparsevec.Map[string, int]),
	}
}

// Ensure MemoryIndex implements lexical.Index
var _ lexical.Index = (*MemoryIndex)(nil)

// Add indexes text under id, replacing a previous document with that id.
func (idx *MemoryIndex) Add(id uint64, text string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.deleteLocked(id)

	tokens := idx.opts.tokenizer(text)
	tf := lexical.TermFrequencies(tokens)

	idx.docs[id] = tf
	idx.docLengths[id] = len(tokens)
	idx.totalLength += int64(len(tokens))
	for term := range tf.Support() {
		idx.docFreq[term]++
	}

	idx.opts.logger.LogAdd(id, tf.Len(), nil)
	return nil
}

// Delete removes the document with the given id. Unknown ids are ignored.
func (idx *MemoryIndex) Delete(id uint64) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.opts.logger.LogDelete(id, idx.deleteLocked(id))
	return nil
}

func (idx *MemoryIndex) deleteLocked(id uint64) bool {
	tf, ok := idx.docs[id]
	if !ok {
		return false
	}

	for term := range tf.Support() {
		if idx.docFreq[term] <= 1 {
			delete(idx.docFreq, term)
			continue
		}
		idx.docFreq[term]--
	}
	idx.totalLength -= int64(idx.docLengths[id])
	delete(idx.docs, id)
	delete(idx.docLengths, id)
	return true
}

// Len returns the number of indexed documents.
func (idx *MemoryIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

// Search returns the k best matching documents for text, ordered by
// descending score. Documents without any query term are never returned.
func (idx *MemoryIndex) Search(text string, k int) ([]lexical.Result, error) {
	if k <= 0 {
		idx.opts.logger.LogSearch(k, 0, sparsevec.ErrInvalidK)
		return nil, sparsevec.ErrInvalidK
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	query := queryVector(idx.opts.tokenizer(text))
	if query.IsEmpty() || len(idx.docs) == 0 {
		idx.opts.logger.LogSearch(k, 0, nil)
		return nil, nil
	}

	n := float64(len(idx.docs))
	avgDL := float64(idx.totalLength) / n

	h := make(resultHeap, 0, min(k, len(idx.docs)))
	for id, tf := range idx.docs {
		norm := idx.opts.k1 * (1 - idx.opts.b + idx.opts.b*float64(idx.docLengths[id])/avgDL)
		score := query.Dot(weights{
			tf:   tf,
			df:   idx.docFreq,
			n:    n,
			k1:   idx.opts.k1,
			norm: norm,
		})
		if score > 0 {
			h.offer(lexical.Result{ID: id, Score: score}, k)
		}
	}

	results := make([]lexical.Result, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		results[i] = h.pop()
	}

	idx.opts.logger.LogSearch(k, len(results), nil)
	return results, nil
}

// Close closes the index.
func (idx *MemoryIndex) Close() error {
	return nil
}

// weights is the BM25 weight vector of a single document, computed on
// lookup.
type weights struct {
	tf   sparsevec.Vector[string, int]
	df   sparsevec.Lookup[string, int]
	n    float64
	k1   float64
	norm float64
}

// Get returns the BM25 weight of term in the document.
func (w weights) Get(term string) float64 {
	tf := float64(w.tf.Get(term))
	if tf == 0 {
		return 0
	}
	return computeIDF(w.n, float64(w.df.Get(term))) * (tf * (w.k1 + 1)) / (tf + w.norm)
}

// computeIDF returns log(1 + (N - n + 0.5) / (n + 0.5)).
func computeIDF(docCount, docFreq float64) float64 {
	return math.Log(1 + (docCount-docFreq+0.5)/(docFreq+0.5))
}

// queryVector counts the query terms.
func queryVector(tokens []string) sparsevec.Vector[string, float64] {
	m := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return sparsevec.New(m)
}
