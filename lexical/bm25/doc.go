// Package bm25 provides a BM25-based lexical search index.
//
// BM25 (Best Matching 25) is a ranking function used for keyword search.
// Each document is stored as a sparse term-frequency vector and scored as
// the dot product of the query's term vector with the document's BM25
// weights.
//
// # Usage
//
//	idx := bm25.New(bm25.WithLogger(sparsevec.NewTextLogger(slog.LevelDebug)))
//	_ = idx.Add(1, "the quick brown fox")
//	_ = idx.Add(2, "jumped over the lazy dog")
//
//	results, _ := idx.Search("quick fox", 10)
//
// # Parameters
//
// Uses standard BM25 parameters by default: k1=1.2, b=0.75.
// Override them with WithParameters.
//
// # Thread Safety
//
// The index is safe for concurrent reads and writes.
package bm25
