package services

import (
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
)

// Repository is the read interface the core consumes. Implementations must
// return each collection from a single consistent read.
type Repository interface {
	ListStaff() ([]models.Staff, error)
	ListShifts() ([]models.Shift, error)
	ListSafetyConcerns() ([]models.SafetyConcern, error)
	ListInventory() ([]models.InventoryItem, error)
	ListFeedback() ([]models.FeedbackEntry, error)
}

// Snapshot holds the record collections read once per evaluation, so every
// count within one summary is computed against the same state.
type Snapshot struct {
	Staff          []models.Staff
	Shifts         []models.Shift
	SafetyConcerns []models.SafetyConcern
	Inventory      []models.InventoryItem
	Feedback       []models.FeedbackEntry
}

// DashboardService computes the windowed dashboard counts. Every count is
// derived by folding the evaluator over a snapshot; the service never runs
// its own threshold queries, so the evaluator's window is the only window.
type DashboardService struct {
	repo                    Repository
	evaluator               *StatusEvaluator
	upcomingShiftWindowDays int
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo Repository, evaluator *StatusEvaluator, upcomingShiftWindowDays int) *DashboardService {
	return &DashboardService{
		repo:                    repo,
		evaluator:               evaluator,
		upcomingShiftWindowDays: upcomingShiftWindowDays,
	}
}

// LoadSnapshot reads all collections from the repository
func (s *DashboardService) LoadSnapshot() (*Snapshot, error) {
	staff, err := s.repo.ListStaff()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	shifts, err := s.repo.ListShifts()
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	concerns, err := s.repo.ListSafetyConcerns()
	if err != nil {
		return nil, fmt.Errorf("failed to load safety concerns: %w", err)
	}
	inventory, err := s.repo.ListInventory()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	feedback, err := s.repo.ListFeedback()
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}

	return &Snapshot{
		Staff:          staff,
		Shifts:         shifts,
		SafetyConcerns: concerns,
		Inventory:      inventory,
		Feedback:       feedback,
	}, nil
}

// Summarize computes the dashboard counts for a snapshot at a reference date
func (s *DashboardService) Summarize(snap *Snapshot, today time.Time) models.DashboardSummary {
	summary := models.DashboardSummary{
		StaffCount:    len(snap.Staff),
		FeedbackCount: len(snap.Feedback),
	}

	for _, shift := range snap.Shifts {
		if s.shiftUpcoming(shift, today) {
			summary.UpcomingShifts++
		}
	}

	for _, concern := range snap.SafetyConcerns {
		if concern.Status == models.SafetyOpen {
			summary.OpenSafetyConcerns++
		}
	}

	for _, item := range snap.Inventory {
		if s.evaluator.InventoryStatus(item.Quantity, item.MinQuantity, item.Expiry, today) != models.InventoryOK {
			summary.LowOrExpiredInventory++
		}
	}

	for _, staff := range snap.Staff {
		status := s.evaluator.CertificationStatus(staff.CertificationExpiry, today)
		if status == models.CertificationDueSoon || status == models.CertificationExpired {
			summary.CertificationsDueOrExpired++
		}
	}

	return summary
}

// Summary loads a fresh snapshot and summarizes it
func (s *DashboardService) Summary(today time.Time) (models.DashboardSummary, error) {
	snap, err := s.LoadSnapshot()
	if err != nil {
		return models.DashboardSummary{}, err
	}
	return s.Summarize(snap, today), nil
}

// shiftUpcoming reports whether a shift falls within the upcoming window.
// A shift date that does not parse is never upcoming.
func (s *DashboardService) shiftUpcoming(shift models.Shift, today time.Time) bool {
	date := shift.ShiftDate
	days, err := s.evaluator.DaysUntil(date, today)
	if err != nil {
		return false
	}
	return days >= 0 && days <= s.upcomingShiftWindowDays
}
