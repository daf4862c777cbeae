package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Dedup returns a new slice holding the first occurrence of every element, in order.
func Dedup[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	res := make(S, 0, len(s))

	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		res = append(res, e)
	}

	return res
}

// Duplicates returns every element that occurs more than once, in order of
// its second occurrence. Each repeated value is reported once.
func Duplicates[S ~[]E, E comparable](s S) S {
	counts := make(map[E]int, len(s))

	var res S

	for _, e := range s {
		counts[e]++
		if counts[e] == 2 {
			res = append(res, e)
		}
	}

	return res
}
