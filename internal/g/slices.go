package g

// Map converts every element with f, preserving order. A nil slice stays nil.
func Map[T any, O any](ts []T, f func(T) O) []O {
	if ts == nil {
		return nil
	}
	result := make([]O, 0, len(ts))
	for _, t := range ts {
		result = append(result, f(t))
	}
	return result
}

// MapErr is Map for fallible conversions; it stops at the first error.
func MapErr[T any, O any](ts []T, f func(T) (O, error)) ([]O, error) {
	result := make([]O, 0, len(ts))
	for _, t := range ts {
		o, err := f(t)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}
