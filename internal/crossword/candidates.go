// internal/crossword/candidates.go
//
// Candidate list for one generation run.
//   - Shuffles the primary and secondary dictionaries with the run's rng.
//   - Interleaves secondary words at every second position.
//   - Drops clue-less, oversize and repeated words; picks one clue per word.

package crossword

import (
	"math/rand"

	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

// Candidate is a word queued for placement with the clue chosen for it.
type Candidate struct {
	Word string
	Clue string
}

// PrepareCandidates builds the ordered candidate list for one run.
//
// Both dictionaries are shuffled. Walking the primary list, every second
// position is taken by the next secondary word while any remain; the other
// positions take the primary word. Each candidate gets a random clue from its
// list. Remaining secondary words are then appended while the list holds
// fewer than 2*target entries.
//
// Entries without clues, words longer than size and repeated words are
// dropped. A nil or empty secondary dictionary yields the shuffled primary
// list.
func PrepareCandidates(rng *rand.Rand, primary, secondary words.Dictionary, target, size int) []Candidate {
	list1 := primary.Words()
	rng.Shuffle(len(list1), func(i, j int) { list1[i], list1[j] = list1[j], list1[i] })
	list2 := secondary.Words()
	rng.Shuffle(len(list2), func(i, j int) { list2[i], list2[j] = list2[j], list2[i] })

	out := make([]Candidate, 0, len(list1)+len(list2))
	seen := make(map[string]struct{}, cap(out))
	add := func(word string, clues []string) bool {
		if len(clues) == 0 || len(word) > size {
			return false
		}
		if _, dup := seen[word]; dup {
			return false
		}
		seen[word] = struct{}{}
		out = append(out, Candidate{Word: word, Clue: clues[rng.Intn(len(clues))]})
		return true
	}

	next2 := 0
	for i, w := range list1 {
		clues := primary[w]
		if len(clues) == 0 {
			continue
		}
		if (i+1)%2 == 0 && next2 < len(list2) {
			w2 := list2[next2]
			next2++
			if add(w2, secondary[w2]) {
				continue
			}
		}
		add(w, clues)
	}

	for next2 < len(list2) && len(out) < target*2 {
		w2 := list2[next2]
		next2++
		add(w2, secondary[w2])
	}
	return out
}
