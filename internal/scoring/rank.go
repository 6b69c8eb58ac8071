package scoring

import (
	"cmp"
	"slices"
)

// Key is the part of an entry the ranker looks at.
type Key struct {
	TeamName          string
	Total             int
	BusinessSubtotal  int
	TechnicalSubtotal int
}

// KeyFor builds a ranking key from a team name and its aggregate.
func KeyFor(teamName string, r Result) Key {
	return Key{
		TeamName:          teamName,
		Total:             r.Total,
		BusinessSubtotal:  r.BusinessSubtotal,
		TechnicalSubtotal: r.TechnicalSubtotal,
	}
}

// tiedWith reports whether two keys share a rank. The team name is ignored.
func (k Key) tiedWith(o Key) bool {
	return k.Total == o.Total &&
		k.BusinessSubtotal == o.BusinessSubtotal &&
		k.TechnicalSubtotal == o.TechnicalSubtotal
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(b.Total, a.Total); c != 0 {
		return c
	}
	if c := cmp.Compare(b.BusinessSubtotal, a.BusinessSubtotal); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TechnicalSubtotal, a.TechnicalSubtotal); c != 0 {
		return c
	}
	return cmp.Compare(a.TeamName, b.TeamName)
}

// Ranked pairs an item with its 1-based competition rank.
type Ranked[T any] struct {
	Item T
	Rank int
}

// Rank orders items by total, business subtotal and technical subtotal (all
// descending), then team name ascending, and assigns competition ranks: tied
// entries share a rank and the next distinct entry gets its 1-based position.
// The input slice is left untouched.
func Rank[T any](items []T, key func(T) Key) []Ranked[T] {
	type keyed struct {
		item T
		key  Key
	}
	sorted := make([]keyed, len(items))
	for i, item := range items {
		sorted[i] = keyed{item: item, key: key(item)}
	}
	slices.SortStableFunc(sorted, func(a, b keyed) int {
		return compareKeys(a.key, b.key)
	})

	ranked := make([]Ranked[T], len(sorted))
	rank := 1
	for i, k := range sorted {
		if i > 0 && !k.key.tiedWith(sorted[i-1].key) {
			rank = i + 1
		}
		ranked[i] = Ranked[T]{Item: k.item, Rank: rank}
	}
	return ranked
}
