package reconcile

// Pair couples a stored element with the incoming element that shares its
// natural key.
type Pair[C, I any] struct {
	Current  C
	Incoming I
}

// Delta is the minimal set of operations that converges the stored collection
// onto the incoming one. Removed and the Current side of Updated partition the
// stored collection; Added and the Incoming side of Updated partition the
// incoming collection.
type Delta[C, I any] struct {
	Removed []C
	Added   []I
	Updated []Pair[C, I]
}

// DiffByKey matches two collections by natural key and returns the delta
// between them. Matching is by key equality only, never by deep equality, so
// an Updated pair may carry identical field values.
//
// When the incoming collection repeats a key, the first occurrence wins and
// later duplicates are dropped, which keeps the result deterministic without
// rejecting the payload at this layer.
func DiffByKey[C, I any, K comparable](current []C, incoming []I, currentKey func(C) K, incomingKey func(I) K) Delta[C, I] {
	incomingByKey := make(map[K]I, len(incoming))
	incomingOrder := make([]K, 0, len(incoming))
	for _, in := range incoming {
		k := incomingKey(in)
		if _, seen := incomingByKey[k]; seen {
			continue
		}
		incomingByKey[k] = in
		incomingOrder = append(incomingOrder, k)
	}

	var delta Delta[C, I]
	currentKeys := make(map[K]struct{}, len(current))
	for _, cur := range current {
		k := currentKey(cur)
		currentKeys[k] = struct{}{}
		if in, ok := incomingByKey[k]; ok {
			delta.Updated = append(delta.Updated, Pair[C, I]{Current: cur, Incoming: in})
		} else {
			delta.Removed = append(delta.Removed, cur)
		}
	}

	for _, k := range incomingOrder {
		if _, ok := currentKeys[k]; !ok {
			delta.Added = append(delta.Added, incomingByKey[k])
		}
	}
	return delta
}
