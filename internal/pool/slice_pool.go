package pool

import "sync"

var tokenSlicePool = sync.Pool{
	New: func() any { return &[]string{} },
}

// GetTokenSlice retrieves an empty string slice with at least the given capacity.
//
// ASCII row decoding splits every line into tokens; reusing one slice per decode
// avoids an allocation per row. The caller must call the returned cleanup function
// once the tokens are no longer referenced.
//
// Parameters:
//   - capacity: Minimum capacity of the returned slice
//
// Returns:
//   - []string: Zero-length slice
//   - func([]string): Cleanup that stores the (possibly grown) slice back in the pool
func GetTokenSlice(capacity int) ([]string, func([]string)) {
	ptr, _ := tokenSlicePool.Get().(*[]string)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]string, 0, capacity)
	}

	return slice, func(used []string) {
		clear(used)
		*ptr = used[:0]
		tokenSlicePool.Put(ptr)
	}
}
