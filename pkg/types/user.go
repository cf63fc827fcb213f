package types

import (
	"strings"
	"time"
)

// User statuses. Deactivation is a soft delete: the record is kept so
// loan history stays attributable.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// User is a registered borrower. The ID is caller-supplied and
// string-compared for uniqueness.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	ActiveLoans      int       `json:"active_loans"`
	TotalLoans       int       `json:"total_loans"`
	TotalPenalties   float64   `json:"total_penalties"`
	Status           string    `json:"status"`
}

// Active reports whether the user may borrow books.
func (u *User) Active() bool { return u.Status == UserActive }

// Deactivate flips the user to inactive. Returns ErrHasActiveLoans if
// any loans are still open. Returns changed=false without error when
// the user is already inactive; the no-op is reported, not failed.
func (u *User) Deactivate() (changed bool, err error) {
	if u.ActiveLoans > 0 {
		return false, ErrHasActiveLoans
	}
	if u.Status == UserInactive {
		return false, nil
	}
	u.Status = UserInactive
	return true, nil
}

// Reactivate flips the user back to active. Idempotent: returns
// changed=false when the user is already active.
func (u *User) Reactivate() (changed bool) {
	if u.Status == UserActive {
		return false
	}
	u.Status = UserActive
	return true
}

// ValidEmail applies the minimal format check used at registration.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@")
}
