package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply overwrites *dst when ptr is set and reports whether anything changed.
func Apply[T comparable](dst *T, ptr *T) bool {
	if ptr == nil || *dst == *ptr {
		return false
	}
	*dst = *ptr
	return true
}
