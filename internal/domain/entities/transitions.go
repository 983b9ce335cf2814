package entities

// CanTransition reports whether a status change is allowed by a static
// adjacency table. Requesting the current status again is always allowed
// (idempotent no-op). The check is a pure table lookup with no side effects.
func CanTransition[S ~int](table map[S][]S, current, next S) bool {
	if current == next {
		return true
	}
	for _, allowed := range table[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
