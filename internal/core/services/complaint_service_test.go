package services

import (
	"context"
	"testing"

	"hosteldesk/internal/adapters/persistence/models"
	"hosteldesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComplaintFixture() (*fakeUserRepo, *fakeComplaintRepo, *ComplaintService) {
	users := newFakeUserRepo()
	complaints := newFakeComplaintRepo(users)
	return users, complaints, NewComplaintService(complaints)
}

func addUser(t *testing.T, users *fakeUserRepo, name, email, room string) uint {
	t.Helper()
	user := &models.User{Name: name, Email: email, Hostel: "Block A", Room: room, Password: "x", Role: domain.RoleUser}
	require.NoError(t, users.Create(context.Background(), user))
	return user.ID
}

func TestSubmitStartsPending(t *testing.T) {
	users, _, svc := newComplaintFixture()
	ctx := context.Background()
	uid := addUser(t, users, "Ravi", "ravi@example.com", "112")

	complaint, err := svc.Submit(ctx, uid, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, complaint.Status)

	mine, err := svc.ListForUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, complaint.ID, mine[0].ID)
	assert.Equal(t, "Plumbing", mine[0].Category)
	assert.Equal(t, "Leaky tap", mine[0].Description)
	assert.Equal(t, domain.StatusPending, mine[0].Status)
}

func TestListForUserOnlyOwnComplaints(t *testing.T) {
	users, _, svc := newComplaintFixture()
	ctx := context.Background()
	ravi := addUser(t, users, "Ravi", "ravi@example.com", "112")
	asha := addUser(t, users, "Asha", "asha@example.com", "201")

	_, err := svc.Submit(ctx, ravi, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, asha, &SubmitInput{Category: "Electrical", Description: "Dead socket"})
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, ravi)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ravi, mine[0].UserID)
}

func TestSetStatusHasNoTransitionGraph(t *testing.T) {
	users, complaints, svc := newComplaintFixture()
	ctx := context.Background()
	uid := addUser(t, users, "Ravi", "ravi@example.com", "112")

	c, err := svc.Submit(ctx, uid, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
	require.NoError(t, err)

	// Any status may follow any other, including moving backwards
	require.NoError(t, svc.SetStatus(ctx, c.ID, domain.StatusResolved))
	require.NoError(t, svc.SetStatus(ctx, c.ID, domain.StatusPending))

	assert.Equal(t, domain.StatusPending, complaints.complaints[0].Status)
}

func TestSetStatusAcceptsArbitraryStrings(t *testing.T) {
	// Longstanding portal behavior: the status column is not restricted to
	// the canonical set. Pinned here so a change to it is a conscious one.
	users, complaints, svc := newComplaintFixture()
	ctx := context.Background()
	uid := addUser(t, users, "Ravi", "ravi@example.com", "112")

	c, err := svc.Submit(ctx, uid, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, c.ID, "Escalated"))
	assert.Equal(t, "Escalated", complaints.complaints[0].Status)
}

func TestDeleteIsIdempotent(t *testing.T) {
	users, complaints, svc := newComplaintFixture()
	ctx := context.Background()
	uid := addUser(t, users, "Ravi", "ravi@example.com", "112")

	c, err := svc.Submit(ctx, uid, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.Empty(t, complaints.complaints)

	// Deleting again, or deleting an id that never existed, is a no-op
	assert.NoError(t, svc.Delete(ctx, c.ID))
	assert.NoError(t, svc.Delete(ctx, 9999))
}

func TestReportCountsCurrentStatuses(t *testing.T) {
	users, _, svc := newComplaintFixture()
	ctx := context.Background()
	uid := addUser(t, users, "Ravi", "ravi@example.com", "112")

	var ids []uint
	for i := 0; i < 5; i++ {
		c, err := svc.Submit(ctx, uid, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	require.NoError(t, svc.SetStatus(ctx, ids[0], domain.StatusResolved))
	require.NoError(t, svc.SetStatus(ctx, ids[1], domain.StatusResolved))
	require.NoError(t, svc.SetStatus(ctx, ids[2], domain.StatusReceived))
	require.NoError(t, svc.SetStatus(ctx, ids[1], domain.StatusVerified)) // moved on, no longer Resolved
	require.NoError(t, svc.Delete(ctx, ids[3]))

	report, err := svc.Report(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.Pending)
	assert.Equal(t, int64(1), report.Received)
	assert.Equal(t, int64(1), report.Verified)
	assert.Equal(t, int64(1), report.Resolved)
}

func TestListAllWithOwnerUsesInnerJoin(t *testing.T) {
	users, _, svc := newComplaintFixture()
	ctx := context.Background()
	ravi := addUser(t, users, "Ravi", "ravi@example.com", "112")
	asha := addUser(t, users, "Asha", "asha@example.com", "201")

	_, err := svc.Submit(ctx, ravi, &SubmitInput{Category: "Plumbing", Description: "Leaky tap"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, asha, &SubmitInput{Category: "Electrical", Description: "Dead socket"})
	require.NoError(t, err)

	rows, err := svc.ListAllWithOwner(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ravi", rows[0].OwnerName)
	assert.Equal(t, "ravi@example.com", rows[0].OwnerEmail)
	assert.Equal(t, "112", rows[0].OwnerRoom)

	// Complaints whose owner was deleted drop out of the listing
	require.NoError(t, users.Delete(ctx, ravi))

	rows, err = svc.ListAllWithOwner(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0].OwnerName)
}
