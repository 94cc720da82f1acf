package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/pkg/mailer"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	certificationReminderSubject = "Certification Renewal Reminder"
	shiftReminderSubject         = "Your Upcoming Shifts"
)

// NotificationService selects staff needing contact, composes reminder
// messages and dispatches them through a caller-supplied transport. The
// transport and its credentials live only for the duration of a Dispatch
// call; the service itself holds none.
type NotificationService struct {
	evaluator               *StatusEvaluator
	upcomingShiftWindowDays int
	maxConcurrentSends      int
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(evaluator *StatusEvaluator, upcomingShiftWindowDays, maxConcurrentSends int) *NotificationService {
	if maxConcurrentSends < 1 {
		maxConcurrentSends = 1
	}
	return &NotificationService{
		evaluator:               evaluator,
		upcomingShiftWindowDays: upcomingShiftWindowDays,
		maxConcurrentSends:      maxConcurrentSends,
	}
}

// BuildCertificationReminders composes one message per staff member whose
// certification is due soon or already expired. Expired and due-soon
// certifications get different bodies; a certification expiring today is
// "in 0 days", not expired.
func (s *NotificationService) BuildCertificationReminders(staff []models.Staff, today time.Time) []mailer.Message {
	var messages []mailer.Message

	for _, member := range staff {
		status := s.evaluator.CertificationStatus(member.CertificationExpiry, today)
		if status != models.CertificationDueSoon && status != models.CertificationExpired {
			continue
		}

		expiry := *member.CertificationExpiry
		certName := ""
		if member.CertificationName != nil {
			certName = *member.CertificationName
		}

		var body string
		if status == models.CertificationExpired {
			body = fmt.Sprintf(
				"Dear %s,\n\nYour certification '%s' expired on %s. Please renew immediately to maintain compliance.\n\nThis is an automated reminder from the staff management system.",
				member.Name, certName, expiry,
			)
		} else {
			days, err := s.evaluator.DaysUntil(expiry, today)
			if err != nil {
				// Unreachable once the status is DueSoon, but never let a
				// malformed date drop the whole batch
				continue
			}
			body = fmt.Sprintf(
				"Dear %s,\n\nYour certification '%s' will expire on %s (in %d days). Please ensure you renew your certification before it expires.\n\nThis is an automated reminder from the staff management system.",
				member.Name, certName, expiry, days,
			)
		}

		messages = append(messages, mailer.Message{
			Recipient: member.Email,
			Subject:   certificationReminderSubject,
			Body:      body,
		})
	}

	return messages
}

// BuildShiftReminders groups upcoming shifts by staff member and composes
// one message per member listing their shifts in ascending date order.
// Shifts referencing a staff record that no longer exists are skipped.
func (s *NotificationService) BuildShiftReminders(shifts []models.Shift, staff []models.Staff, today time.Time) []mailer.Message {
	byStaff := make(map[uuid.UUID][]models.Shift)
	for _, shift := range shifts {
		days, err := s.evaluator.DaysUntil(shift.ShiftDate, today)
		if err != nil || days < 0 || days > s.upcomingShiftWindowDays {
			continue
		}
		byStaff[shift.StaffID] = append(byStaff[shift.StaffID], shift)
	}

	var messages []mailer.Message
	for _, member := range staff {
		upcoming, ok := byStaff[member.ID]
		if !ok {
			continue
		}

		sort.SliceStable(upcoming, func(i, j int) bool {
			return upcoming[i].ShiftDate < upcoming[j].ShiftDate
		})

		lines := make([]string, 0, len(upcoming))
		for _, shift := range upcoming {
			lines = append(lines, fmt.Sprintf("%s (%s)", shift.ShiftDate, shift.ShiftType))
		}

		body := fmt.Sprintf(
			"Dear %s,\n\nHere is your schedule for the next week:\n\n%s\n\nBest regards,\nStaff Support Service",
			member.Name, strings.Join(lines, "\n"),
		)

		messages = append(messages, mailer.Message{
			Recipient: member.Email,
			Subject:   shiftReminderSubject,
			Body:      body,
		})
	}

	return messages
}

// Dispatch attempts every message independently through the transport.
// A failed send never aborts the batch; failures are reported in the order
// the messages were selected. An empty selection returns immediately
// without touching the transport. Cancelling the context skips sends that
// have not started yet, and the result reflects only completed attempts.
func (s *NotificationService) Dispatch(ctx context.Context, messages []mailer.Message, transport mailer.Transport) models.BatchResult {
	result := models.BatchResult{
		Failures: []models.DeliveryFailure{},
	}
	if len(messages) == 0 {
		return result
	}

	type outcome struct {
		attempted bool
		err       error
	}
	outcomes := make([]outcome, len(messages))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentSends)

	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcomes[i] = outcome{
				attempted: true,
				err:       transport.Send(msg.Recipient, msg.Subject, msg.Body),
			}
			return nil
		})
	}

	// Workers report their outcome through the slice, never as an error
	_ = g.Wait()

	for i, o := range outcomes {
		if !o.attempted {
			continue
		}
		result.Attempted++
		if o.err != nil {
			result.Failures = append(result.Failures, models.DeliveryFailure{
				Recipient: messages[i].Recipient,
				Reason:    o.err.Error(),
			})
		} else {
			result.SentCount++
		}
	}

	return result
}
