// Package diff computes structural differences between two decoded
// gradebook snapshots.
//
// Compare walks the old and new trees in lock step, pairing courses by
// title and assignments by gradebook ID, and emits a Changeset holding
// only the entities that actually changed, each carrying only its
// changed fields. Inputs are read-only; a Changeset owns all of its
// values and may outlive both input trees.
package diff

// A Pair matches an element of an old collection with its counterpart
// in a new collection. A nil Old means the element was added, a nil New
// that it was removed.
type Pair[V any] struct {
	Old *V
	New *V
}

// PairByKey matches the elements of old and new by key. Every element
// of both inputs appears in exactly one pair, and no element is paired
// with more than one counterpart. Matching is purely by key equality,
// never by position: pairs for old elements come first in old order,
// followed by pairs for unmatched new elements in new order.
func PairByKey[K comparable, V any](old, new []V, key func(V) K) []Pair[V] {
	unmatched := make(map[K]*V, len(new))
	for i := range new {
		unmatched[key(new[i])] = &new[i]
	}
	pairs := make([]Pair[V], 0, len(old))
	for i := range old {
		k := key(old[i])
		pairs = append(pairs, Pair[V]{Old: &old[i], New: unmatched[k]})
		delete(unmatched, k)
	}
	for i := range new {
		if nv := unmatched[key(new[i])]; nv == &new[i] {
			pairs = append(pairs, Pair[V]{New: nv})
		}
	}
	return pairs
}
