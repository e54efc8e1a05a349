package domain

import "time"

type JobApplication struct {
	ID          string
	Company     string
	Role        string
	Status      string
	DateApplied time.Time
	Notes       string
	OwnerID     string
	CreatedAt   time.Time
}

const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// ValidStatus reports whether s is one of the allowed application statuses.
// Storage does not enforce this; the service layer does.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}
