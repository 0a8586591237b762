package ingest

import "sort"

// Vocabulary accumulates the universe of distinct category pair
// strings seen across all admitted records. Accumulation order does
// not matter; Finalize is deterministic for a given membership.
type Vocabulary struct {
	seen map[string]struct{}
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{seen: make(map[string]struct{})}
}

// Add records each pair; duplicates collapse.
func (v *Vocabulary) Add(pairs []string) {
	for _, p := range pairs {
		v.seen[p] = struct{}{}
	}
}

// Finalize returns the sorted vocabulary. The "All" sentinel is a
// boundary concern and is not part of the vocabulary itself.
func (v *Vocabulary) Finalize() []string {
	out := make([]string, 0, len(v.seen))
	for p := range v.seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
