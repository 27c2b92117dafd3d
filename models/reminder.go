package models

// DeliveryFailure records one reminder email that could not be delivered.
type DeliveryFailure struct {
	EventID   string `json:"eventId"`
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

// RunResult aggregates the outcome of one reminder engine run.
type RunResult struct {
	CandidateEvents int               `json:"candidateEvents"`
	DueEvents       int               `json:"dueEvents"`
	Attempted       int               `json:"attempted"`
	Sent            int               `json:"sent"`
	Deduplicated    int               `json:"deduplicated"`
	Failures        []DeliveryFailure `json:"failures,omitempty"`
}
