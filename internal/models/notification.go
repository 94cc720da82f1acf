package models

// DeliveryFailure records one failed send attempt within a batch
type DeliveryFailure struct {
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

// BatchResult is the outcome of a notification dispatch. Failures are
// ordered by the position of the message in the original selection, and a
// cancelled batch reports only the attempts that actually completed.
type BatchResult struct {
	Attempted int               `json:"attempted"`
	SentCount int               `json:"sent_count"`
	Failures  []DeliveryFailure `json:"failures"`
}
