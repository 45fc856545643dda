package usecase

import (
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. The two are never distinguished to callers, so a failed
// login cannot be used to probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountStateError reports an account that failed eligibility
// evaluation. The state is kept for internal logging and metrics; the
// HTTP layer must collapse it into the same unauthorized signal as
// ErrInvalidCredentials.
type AccountStateError struct {
	State entity.AccountState
}

func (e *AccountStateError) Error() string {
	return fmt.Sprintf("account denied: %s", e.State)
}
