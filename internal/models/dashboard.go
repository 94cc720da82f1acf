package models

// DashboardSummary holds the windowed counts shown on the dashboard.
// Every count is derived by classifying a snapshot with the evaluator;
// the summary is never an independent source of truth.
type DashboardSummary struct {
	StaffCount                 int `json:"staff_count"`
	UpcomingShifts             int `json:"upcoming_shifts"`
	OpenSafetyConcerns         int `json:"open_safety_concerns"`
	LowOrExpiredInventory      int `json:"low_or_expired_inventory"`
	CertificationsDueOrExpired int `json:"certifications_due_or_expired"`
	FeedbackCount              int `json:"feedback_count"`
}
