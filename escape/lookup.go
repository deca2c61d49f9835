package escape

import "sort"

// Lookup returns a Translator that replaces literal character sequences
// according to table. At each position the longest pattern matching the
// input wins; if no pattern matches, the translator declines.
//
// Patterns must be non-empty. Lookup panics on an empty pattern, since a
// translator that matches the empty string would never let the input
// advance.
func Lookup(table map[string]string) Translator {
	l := &lookup{min: -1}
	for from, to := range table {
		if from == "" {
			panic("escape: empty pattern in lookup table")
		}
		l.byFirst[from[0]] = append(l.byFirst[from[0]], lookupPair{from: from, to: to})
		if l.min == -1 || len(from) < l.min {
			l.min = len(from)
		}
		if len(from) > l.max {
			l.max = len(from)
		}
	}
	if l.min == -1 {
		l.min = 0
	}
	// Longest pattern first within each bucket so that the first hit
	// is the longest match. The secondary ordering only makes bucket
	// traversal deterministic.
	for _, bucket := range &l.byFirst {
		sort.Slice(bucket, func(i, j int) bool {
			if len(bucket[i].from) != len(bucket[j].from) {
				return len(bucket[i].from) > len(bucket[j].from)
			}
			return bucket[i].from < bucket[j].from
		})
	}
	return l
}

type lookupPair struct {
	from, to string
}

// lookup holds a fixed replacement table indexed by the first byte of
// each pattern. min and max bound the pattern lengths in bytes.
type lookup struct {
	byFirst [256][]lookupPair
	min     int
	max     int
}

func (l *lookup) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	if len(src)-index < l.min {
		return dst, 0, nil
	}
	for _, p := range l.byFirst[src[index]] {
		if len(p.from) <= len(src)-index && src[index:index+len(p.from)] == p.from {
			return append(dst, p.to...), len(p.from), nil
		}
	}
	return dst, 0, nil
}
