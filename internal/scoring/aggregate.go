package scoring

// Status is the completion status of a team's score
type Status string

const (
	StatusComplete Status = "Complete"
	// StatusPartial also covers a team that has not been scored at all.
	StatusPartial Status = "Partial"
)

// Result is the computed view of a Criteria record.
type Result struct {
	BusinessSubtotal  int    `json:"businessSubtotal"`
	TechnicalSubtotal int    `json:"technicalSubtotal"`
	Total             int    `json:"total"`
	Status            Status `json:"status"`
}

// Aggregate computes subtotals, total and status for a score. Unset criteria
// count as 0 and make the status Partial. It never fails: range checks are
// done before a score is persisted.
func Aggregate(c Criteria) Result {
	var res Result
	complete := true
	for i, v := range c.Values() {
		if v == nil {
			complete = false
			continue
		}
		if i < businessCriteria {
			res.BusinessSubtotal += *v
		} else {
			res.TechnicalSubtotal += *v
		}
	}
	res.Total = res.BusinessSubtotal + res.TechnicalSubtotal
	res.Status = StatusPartial
	if complete {
		res.Status = StatusComplete
	}
	return res
}
