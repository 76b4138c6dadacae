// Package vocab holds the reference vocabulary: the fixed set of word forms
// treated as ground-truth correct spellings for a classification run.
package vocab

import (
	"github.com/antzucaro/matchr"
	mapset "github.com/deckarep/golang-set/v2"
)

// Vocabulary is an immutable set of known-correct word forms. It answers
// exact membership and bounded edit-distance proximity queries.
//
// A Vocabulary is read-only after construction and therefore safe for
// unsynchronized concurrent reads; the backing set is deliberately the
// thread-unsafe variant.
type Vocabulary struct {
	words mapset.Set[string]
}

// New builds a Vocabulary from the given word forms. Duplicates collapse to
// one entry and empty strings are discarded — the source is not assumed to
// be well-formed. Words are stored exactly as given: no casing or diacritic
// normalization is applied here or at query time.
func New(words []string) *Vocabulary {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		if w == "" {
			continue
		}
		set.Add(w)
	}
	return &Vocabulary{words: set}
}

// Contains reports whether token is a member of the vocabulary. O(1).
func (v *Vocabulary) Contains(token string) bool {
	return v.words.Contains(token)
}

// Len returns the number of distinct entries.
func (v *Vocabulary) Len() int {
	return v.words.Cardinality()
}

// Words returns the entries in unspecified order.
func (v *Vocabulary) Words() []string {
	return v.words.ToSlice()
}

// HasNeighborWithin reports whether any vocabulary entry has Levenshtein
// distance at most maxDist from token. It is an existential query: the scan
// stops at the first qualifying entry and no particular neighbor is
// identified. Distances are measured in Unicode code points.
func (v *Vocabulary) HasNeighborWithin(token string, maxDist int) bool {
	if maxDist < 0 {
		return false
	}
	tokenLen := len([]rune(token))

	found := false
	v.words.Each(func(entry string) bool {
		// A length gap wider than the radius cannot close within maxDist
		// edits; skip without computing the full distance table.
		entryLen := len([]rune(entry))
		if diff := entryLen - tokenLen; diff > maxDist || diff < -maxDist {
			return false
		}
		if matchr.Levenshtein(token, entry) <= maxDist {
			found = true
			return true // stop iteration
		}
		return false
	})
	return found
}
