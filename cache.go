package pagesift

// Cache memoizes formatted extraction results per URL.
// Implementations must be safe for concurrent use; stored results are
// immutable once written.
type Cache interface {
	// Get returns the cached result for the URL. Expired entries are
	// treated as misses.
	Get(url string) (result string, ok bool)

	// Put stores the result for the URL, evicting the oldest entry
	// when the cache is at capacity.
	Put(url string, result string)

	// Clear removes all entries.
	Clear()

	// Len reports the number of live entries.
	Len() int
}
