package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name                       string
	total, business, technical int
}

func entryKey(e entry) Key {
	return Key{TeamName: e.name, Total: e.total, BusinessSubtotal: e.business, TechnicalSubtotal: e.technical}
}

func names(ranked []Ranked[entry]) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Item.name
	}
	return out
}

func ranks(ranked []Ranked[entry]) []int {
	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.Rank
	}
	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name      string
		entries   []entry
		wantNames []string
		wantRanks []int
	}{
		{
			name: "by total descending",
			entries: []entry{
				{"Alpha", 50, 25, 25},
				{"Beta", 70, 35, 35},
				{"Gamma", 60, 30, 30},
			},
			wantNames: []string{"Beta", "Gamma", "Alpha"},
			wantRanks: []int{1, 2, 3},
		},
		{
			name: "business subtotal breaks a total tie",
			entries: []entry{
				{"A", 60, 25, 35},
				{"B", 60, 30, 30},
			},
			wantNames: []string{"B", "A"},
			wantRanks: []int{1, 2},
		},
		{
			name: "technical subtotal breaks a total and business tie",
			entries: []entry{
				{"A", 60, 30, 29},
				{"B", 60, 30, 30},
			},
			wantNames: []string{"B", "A"},
			wantRanks: []int{1, 2},
		},
		{
			name: "full tie ordered by name and sharing rank",
			entries: []entry{
				{"Zebra", 50, 25, 25},
				{"Alpha", 50, 25, 25},
				{"Mango", 50, 25, 25},
			},
			wantNames: []string{"Alpha", "Mango", "Zebra"},
			wantRanks: []int{1, 1, 1},
		},
		{
			name: "rank skips after a tie",
			entries: []entry{
				{"A", 80, 40, 40},
				{"B", 80, 40, 40},
				{"C", 60, 30, 30},
			},
			wantNames: []string{"A", "B", "C"},
			wantRanks: []int{1, 1, 3},
		},
		{
			name: "tie in the middle",
			entries: []entry{
				{"D", 10, 5, 5},
				{"C", 40, 20, 20},
				{"B", 40, 20, 20},
				{"E", 40, 20, 20},
				{"A", 90, 45, 45},
			},
			wantNames: []string{"A", "B", "C", "E", "D"},
			wantRanks: []int{1, 2, 2, 2, 5},
		},
		{
			name: "name comparison is case sensitive",
			entries: []entry{
				{"alpha", 50, 25, 25},
				{"Beta", 50, 25, 25},
			},
			wantNames: []string{"Beta", "alpha"},
			wantRanks: []int{1, 1},
		},
		{
			name:      "single entry",
			entries:   []entry{{"Solo", 0, 0, 0}},
			wantNames: []string{"Solo"},
			wantRanks: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.entries, entryKey)
			require.Len(t, got, len(tt.entries))
			assert.Equal(t, tt.wantNames, names(got))
			assert.Equal(t, tt.wantRanks, ranks(got))
		})
	}
}

func TestRank_Empty(t *testing.T) {
	got := Rank([]entry{}, entryKey)
	assert.Empty(t, got)

	got = Rank[entry](nil, entryKey)
	assert.Empty(t, got)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []entry{{"Alpha", 50, 25, 25}, {"Beta", 70, 35, 35}}
	Rank(in, entryKey)
	assert.Equal(t, "Alpha", in[0].name)
	assert.Equal(t, "Beta", in[1].name)
}

func TestRank_StableUnderReranking(t *testing.T) {
	in := []entry{
		{"C", 60, 30, 30},
		{"B", 80, 40, 40},
		{"A", 80, 40, 40},
		{"D", 60, 30, 30},
		{"E", 20, 10, 10},
	}
	first := Rank(in, entryKey)

	again := make([]entry, len(first))
	for i, r := range first {
		again[i] = r.Item
	}
	second := Rank(again, entryKey)

	assert.Equal(t, names(first), names(second))
	assert.Equal(t, ranks(first), ranks(second))
	assert.Equal(t, []int{1, 1, 3, 3, 5}, ranks(second))
}

func TestRank_TiedTeamsShareRankRegardlessOfName(t *testing.T) {
	in := []entry{
		{"zz", 70, 30, 40},
		{"AA", 70, 30, 40},
		{"mm", 70, 30, 40},
		{"x", 69, 30, 39},
	}
	got := Rank(in, entryKey)
	assert.Equal(t, []int{1, 1, 1, 4}, ranks(got))
}

func TestKeyFor(t *testing.T) {
	k := KeyFor("Team", Result{BusinessSubtotal: 10, TechnicalSubtotal: 12, Total: 22, Status: StatusPartial})
	assert.Equal(t, Key{TeamName: "Team", Total: 22, BusinessSubtotal: 10, TechnicalSubtotal: 12}, k)
}
