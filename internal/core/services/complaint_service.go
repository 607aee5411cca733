package services

import (
	"context"
	"log"

	"hosteldesk/internal/adapters/persistence/models"
	"hosteldesk/internal/adapters/persistence/repositories"
	"hosteldesk/internal/core/domain"
)

// ComplaintService handles the complaint ledger: submission, listing, status
// changes, deletion, and the status report.
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

// SubmitInput represents complaint submission input
type SubmitInput struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// StatusReport holds complaint counts per canonical status
type StatusReport struct {
	Pending  int64 `json:"pending"`
	Received int64 `json:"received"`
	Verified int64 `json:"verified"`
	Resolved int64 `json:"resolved"`
}

// Submit files a new complaint for the given user. New complaints always
// start as Pending.
func (s *ComplaintService) Submit(ctx context.Context, userID uint, input *SubmitInput) (*models.Complaint, error) {
	complaint := &models.Complaint{
		UserID:      userID,
		Category:    input.Category,
		Description: input.Description,
		Status:      domain.StatusPending,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	log.Printf("complaint submitted: id=%d user=%d category=%q", complaint.ID, userID, input.Category)
	return complaint, nil
}

// ListForUser lists a user's own complaints in insertion order.
func (s *ComplaintService) ListForUser(ctx context.Context, userID uint) ([]*models.Complaint, error) {
	return s.complaintRepo.ListByUserID(ctx, userID)
}

// ListAllWithOwner lists every complaint joined with its owner's identity.
// Complaints whose owner has been deleted do not appear.
func (s *ComplaintService) ListAllWithOwner(ctx context.Context) ([]*models.ComplaintWithOwner, error) {
	return s.complaintRepo.ListWithOwner(ctx)
}

// SetStatus overwrites a complaint's status. Any status may follow any other;
// the value itself is not restricted to the canonical set, matching the
// behavior the portal has always had.
func (s *ComplaintService) SetStatus(ctx context.Context, id uint, status string) error {
	return s.complaintRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a complaint. Deleting an absent id is a no-op.
func (s *ComplaintService) Delete(ctx context.Context, id uint) error {
	return s.complaintRepo.Delete(ctx, id)
}

// Report counts complaints per canonical status.
func (s *ComplaintService) Report(ctx context.Context) (*StatusReport, error) {
	report := &StatusReport{}
	targets := map[string]*int64{
		domain.StatusPending:  &report.Pending,
		domain.StatusReceived: &report.Received,
		domain.StatusVerified: &report.Verified,
		domain.StatusResolved: &report.Resolved,
	}

	for _, status := range domain.ComplaintStatuses() {
		count, err := s.complaintRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		*targets[status] = count
	}

	return report, nil
}
