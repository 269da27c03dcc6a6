package common

// Coalesce returns the first argument that is not the zero value of its type.
// Builder options use it to fall back to defaults when a caller passes a zero value.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value if every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
