package domain

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Complaint statuses. New complaints always start as Pending; admins may move
// a complaint to any status in any order (there is no transition graph).
const (
	StatusPending  = "Pending"
	StatusReceived = "Received"
	StatusVerified = "Verified"
	StatusResolved = "Resolved"
)

// ComplaintStatuses returns the canonical statuses in report order.
func ComplaintStatuses() []string {
	return []string{StatusPending, StatusReceived, StatusVerified, StatusResolved}
}

// Login attempt outcomes recorded in the audit log.
const (
	LoginSuccess = "SUCCESS"
	LoginFailed  = "FAILED"
)
