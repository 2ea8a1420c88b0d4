// Package lexical turns text into sparse term vectors and defines the
// interface for keyword search indexes built on them.
//
// # Term Vectors
//
//	tf := lexical.TermFrequencies(lexical.DefaultTokenizer("the quick the"))
//	tf.Get("the") // 2
//
// # Built-in Implementation
//
// The bm25 subpackage provides a BM25-based lexical index whose scores are
// sparse dot products between the query's term vector and per-document
// BM25 weights:
//
//	idx := bm25.New()
//	_ = idx.Add(1, "the quick brown fox")
//	results, _ := idx.Search("fox", 10)
//
// # Custom Implementations
//
// Implement the Index interface for custom lexical search:
//
//	type Index interface {
//	    Add(id uint64, text string) error
//	    Delete(id uint64) error
//	    Search(text string, k int) ([]Result, error)
//	    Close() error
//	}
package lexical
