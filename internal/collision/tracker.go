package collision

import (
	"fmt"

	"github.com/arloliu/ply/internal/hash"
)

// Tracker detects repeated names within one scope (the elements of a document, or
// the properties of an element). Names are bucketed by their xxHash64 so distinct
// names sharing a hash are kept apart instead of being reported as duplicates.
type Tracker struct {
	buckets map[uint64][]string // hash → distinct names with that hash
	dupErr  error               // returned on a repeated name
}

// NewTracker creates a tracker that reports repeated names with dupErr.
//
// Parameters:
//   - dupErr: Sentinel error wrapped when a name is tracked twice
//     (e.g. errs.ErrDuplicateElementName)
//   - capacity: Expected number of names
func NewTracker(dupErr error, capacity int) *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]string, capacity),
		dupErr:  dupErr,
	}
}

// Track records name, returning the tracker's duplicate error if it was seen before.
func (t *Tracker) Track(name string) error {
	id := hash.ID(name)

	bucket := t.buckets[id]
	for _, existing := range bucket {
		if existing == name {
			return fmt.Errorf("%w: %q", t.dupErr, name)
		}
	}
	t.buckets[id] = append(bucket, name)

	return nil
}
