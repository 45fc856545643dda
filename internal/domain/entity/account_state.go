package entity

import (
	"time"
)

// AccountState is the composite eligibility status of an account,
// derived from its flags and expiry dates independently of password
// correctness.
type AccountState string

const (
	AccountStateActive             AccountState = "active"
	AccountStateDisabled           AccountState = "disabled"
	AccountStateLocked             AccountState = "locked"
	AccountStateExpired            AccountState = "expired"
	AccountStateExpiredCredentials AccountState = "expired_credentials"
)

// EvaluateAccountState derives the account state from a user snapshot
// at the given instant. A user may carry several denying flags at once;
// the first match in the fixed order below is the one surfaced, so a
// single reason is reported per evaluation. Only AccountStateActive
// permits authentication to proceed to password verification.
func EvaluateAccountState(u *User, now time.Time) AccountState {
	if !u.Enabled {
		return AccountStateDisabled
	}
	if !u.AccountNonLocked {
		return AccountStateLocked
	}
	if !u.AccountNonExpired || u.AccountExpiryDate.Before(now) {
		return AccountStateExpired
	}
	if !u.CredentialsNonExpired || u.CredentialsExpiryDate.Before(now) {
		return AccountStateExpiredCredentials
	}
	return AccountStateActive
}
