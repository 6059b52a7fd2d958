package duplicates

import "github.com/google/uuid"

// pairNamespace scopes the name-based UUIDs of duplicate pairs.
var pairNamespace = uuid.MustParse("0f3b9d52-4a8e-5c1d-9b7e-2f6a1c8d4e30")

// PairKey returns the stable identifier of the unordered pair of questions
// a and b: a name-based (version 5) UUID of the sorted IDs.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return uuid.NewSHA1(pairNamespace, []byte(a+"\x00"+b)).String()
}

// Reconcile returns current with the status of every pair that also
// appears in previous carried over. Pairs new to current stay unresolved.
func Reconcile(previous, current []Pair) []Pair {
	if len(previous) == 0 || len(current) == 0 {
		return current
	}
	statuses := make(map[string]Status, len(previous))
	for _, p := range previous {
		statuses[p.ID] = p.Status
	}
	return ApplyStatuses(statuses, current)
}

// ApplyStatuses returns pairs with the status recorded for each pair ID in
// statuses. The input slice is not modified.
func ApplyStatuses(statuses map[string]Status, pairs []Pair) []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	for i := range out {
		if s, ok := statuses[out[i].ID]; ok && s.Valid() {
			out[i].Status = s
		}
	}
	return out
}

// Flagged returns the IDs of questions that belong to at least one pair
// whose status is unresolved or keep-both.
func Flagged(pairs []Pair) map[string]bool {
	ids := make(map[string]bool)
	for _, p := range pairs {
		if p.Status.Highlighted() {
			ids[p.QuestionIDA] = true
			ids[p.QuestionIDB] = true
		}
	}
	return ids
}

// Find returns the pair with the given ID.
func Find(pairs []Pair, id string) (Pair, bool) {
	for _, p := range pairs {
		if p.ID == id {
			return p, true
		}
	}
	return Pair{}, false
}

// Count tallies pairs by whether they are still unresolved.
func Count(pairs []Pair) (unresolved, resolved int) {
	for _, p := range pairs {
		if p.Status == StatusUnresolved {
			unresolved++
		} else {
			resolved++
		}
	}
	return unresolved, resolved
}
