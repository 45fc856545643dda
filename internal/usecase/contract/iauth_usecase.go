package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// IAuthUseCase defines the interface for per-request authentication.
type IAuthUseCase interface {
	// Authenticate validates a decoded username/password pair against the
	// user store and returns the resulting principal. All failures are
	// reported through errors that callers must surface as one generic
	// unauthorized signal.
	Authenticate(ctx context.Context, username, password string) (*entity.Principal, error)
}
