package lexical

// Result is a scored document returned by a keyword search.
type Result struct {
	// ID is the caller-assigned document identifier.
	ID uint64
	// Score is the relevance score; higher is better.
	Score float64
}

// Index is the interface for a lexical search index.
type Index interface {
	// Add adds a document to the index, replacing any document with the same id.
	Add(id uint64, text string) error
	// Delete removes a document from the index.
	Delete(id uint64) error
	// Search performs a keyword search and returns at most k results.
	Search(text string, k int) ([]Result, error)
	// Close closes the index.
	Close() error
}
