package layout

// Reverse returns items in reverse order if shouldReverse is true. The
// input slice is never modified.
func Reverse[T any](shouldReverse bool, items ...T) []T {
	out := make([]T, len(items))
	for ii, item := range items {
		if shouldReverse {
			out[len(items)-1-ii] = item
		} else {
			out[ii] = item
		}
	}
	return out
}
