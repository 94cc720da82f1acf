package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
)

// ReportService exports record collections as CSV. Column order follows the
// stored attribute order; status columns are computed with the shared
// evaluator at export time, never stored.
type ReportService struct {
	repo      Repository
	evaluator *StatusEvaluator
}

// NewReportService creates a new ReportService
func NewReportService(repo Repository, evaluator *StatusEvaluator) *ReportService {
	return &ReportService{
		repo:      repo,
		evaluator: evaluator,
	}
}

// WriteStaffReport writes every staff record with its evaluated
// certification status
func (s *ReportService) WriteStaffReport(w io.Writer, today time.Time) error {
	staff, err := s.repo.ListStaff()
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "email", "role", "certification_name", "certification_expiry", "training_due", "certification_status"}); err != nil {
		return err
	}
	for _, member := range staff {
		status := s.evaluator.CertificationStatus(member.CertificationExpiry, today)
		record := []string{
			member.Name,
			member.Email,
			deref(member.Role),
			deref(member.CertificationName),
			deref(member.CertificationExpiry),
			deref(member.TrainingDue),
			string(status),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCertificationsDueReport writes only the staff whose certification is
// due soon or already expired
func (s *ReportService) WriteCertificationsDueReport(w io.Writer, today time.Time) error {
	staff, err := s.repo.ListStaff()
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "email", "certification_name", "certification_expiry", "certification_status", "days_remaining"}); err != nil {
		return err
	}
	for _, member := range staff {
		status := s.evaluator.CertificationStatus(member.CertificationExpiry, today)
		if status != models.CertificationDueSoon && status != models.CertificationExpired {
			continue
		}
		days, err := s.evaluator.DaysUntil(*member.CertificationExpiry, today)
		if err != nil {
			continue
		}
		record := []string{
			member.Name,
			member.Email,
			deref(member.CertificationName),
			deref(member.CertificationExpiry),
			string(status),
			strconv.Itoa(days),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteInventoryReport writes every inventory item with its evaluated status
func (s *ReportService) WriteInventoryReport(w io.Writer, today time.Time) error {
	items, err := s.repo.ListInventory()
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"item_name", "quantity", "min_quantity", "expiry", "status"}); err != nil {
		return err
	}
	for _, item := range items {
		status := s.evaluator.InventoryStatus(item.Quantity, item.MinQuantity, item.Expiry, today)
		record := []string{
			item.ItemName,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.MinQuantity),
			deref(item.Expiry),
			string(status),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFeedbackReport writes every feedback entry
func (s *ReportService) WriteFeedbackReport(w io.Writer) error {
	entries, err := s.repo.ListFeedback()
	if err != nil {
		return fmt.Errorf("failed to load feedback: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"feedback_date", "staff_id", "topic", "rating", "comments"}); err != nil {
		return err
	}
	for _, entry := range entries {
		staffID := ""
		if entry.StaffID != nil {
			staffID = entry.StaffID.String()
		}
		record := []string{
			entry.FeedbackDate,
			staffID,
			entry.Topic,
			strconv.Itoa(entry.Rating),
			deref(entry.Comments),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSafetyReport writes every safety concern
func (s *ReportService) WriteSafetyReport(w io.Writer) error {
	concerns, err := s.repo.ListSafetyConcerns()
	if err != nil {
		return fmt.Errorf("failed to load safety concerns: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"reported_date", "staff_id", "description", "status"}); err != nil {
		return err
	}
	for _, concern := range concerns {
		staffID := ""
		if concern.StaffID != nil {
			staffID = concern.StaffID.String()
		}
		record := []string{
			concern.ReportedDate,
			staffID,
			concern.Description,
			string(concern.Status),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// deref returns the string value or empty for nil
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
