package scoring

// CriteriaCount is the fixed number of rubric criteria per session.
const CriteriaCount = 10

// businessCriteria is the number of leading criteria that belong to the Business group.
const businessCriteria = 5

// Group identifies which half of the rubric a criterion belongs to
type Group string

const (
	GroupBusiness  Group = "Business"
	GroupTechnical Group = "Technical"
)

// GroupForIndex returns the group of the 1-based criterion index.
// Indices 1-5 are Business and 6-10 are Technical.
func GroupForIndex(index int) Group {
	if index <= businessCriteria {
		return GroupBusiness
	}
	return GroupTechnical
}

// ValidIndex reports whether index is a criterion index (1..10)
func ValidIndex(index int) bool {
	return index >= 1 && index <= CriteriaCount
}

// Criteria holds the ten per-criterion scores of one team. A nil field means
// the criterion has not been scored yet.
type Criteria struct {
	C1  *int `json:"c1"`
	C2  *int `json:"c2"`
	C3  *int `json:"c3"`
	C4  *int `json:"c4"`
	C5  *int `json:"c5"`
	C6  *int `json:"c6"`
	C7  *int `json:"c7"`
	C8  *int `json:"c8"`
	C9  *int `json:"c9"`
	C10 *int `json:"c10"`
}

// Values returns the criteria in index order (C1 first).
func (c Criteria) Values() [CriteriaCount]*int {
	return [CriteriaCount]*int{c.C1, c.C2, c.C3, c.C4, c.C5, c.C6, c.C7, c.C8, c.C9, c.C10}
}

// CriteriaFromValues is the inverse of Values.
func CriteriaFromValues(v [CriteriaCount]*int) Criteria {
	return Criteria{
		C1: v[0], C2: v[1], C3: v[2], C4: v[3], C5: v[4],
		C6: v[5], C7: v[6], C8: v[7], C9: v[8], C10: v[9],
	}
}
