// Package find holds the linear lookups the builders use to join raw
// snapshot collections. Snapshots hold tens to low hundreds of rows, so
// nothing here pre-builds an index unless asked to.
package find

// First returns the first element of items for which match reports true.
func First[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FirstBy returns the first element whose key equals want.
func FirstBy[T any, K comparable](items []T, key func(T) K, want K) (T, bool) {
	return First(items, func(item T) bool { return key(item) == want })
}

// FirstOr is First with a caller supplied placeholder for the no-match case.
func FirstOr[T any](items []T, match func(T) bool, fallback T) T {
	if item, ok := First(items, match); ok {
		return item
	}
	return fallback
}

// IndexBy maps every element by key. When keys repeat the first element wins,
// matching what First would have returned.
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		k := key(item)
		if _, exists := index[k]; exists {
			continue
		}
		index[k] = item
	}
	return index
}

// Filter returns every element for which match reports true, in order.
func Filter[T any](items []T, match func(T) bool) []T {
	var out []T
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
