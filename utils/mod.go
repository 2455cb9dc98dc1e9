package utils

// FindIndex returns the index of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns how many elements of slice satisfy keep.
func Count[T any](slice []T, keep func(T) bool) int {
	n := 0
	for _, v := range slice {
		if keep(v) {
			n++
		}
	}
	return n
}

// LastIndex returns the index of the last element satisfying keep, or -1.
func LastIndex[T any](slice []T, keep func(T) bool) int {
	for i := len(slice) - 1; i >= 0; i-- {
		if keep(slice[i]) {
			return i
		}
	}
	return -1
}
