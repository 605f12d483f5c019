package domain

// Priority ranks a recommendation or improvement
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities high-first; unknown values sort last
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Recommendation is a single piece of advice produced by a rule
type Recommendation struct {
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}
