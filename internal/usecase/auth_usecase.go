package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// AuthUsecase validates presented credentials against stored records.
// It holds no per-request state: every call authenticates independently
// and nothing is cached between requests.
type AuthUsecase struct {
	userRepo contract.IUserRepository
	hasher   contract.IHasher
	logger   usecasecontract.IAppLogger
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Authenticate resolves a username/password pair to a principal.
// Lookup is by exact username. An unknown username, a non-active
// account state and a wrong password all fail; only the account-state
// case carries its reason internally, and none of them are
// distinguishable to the HTTP caller.
func (uc *AuthUsecase) Authenticate(ctx context.Context, username, password string) (*entity.Principal, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		uc.logger.Errorf("user lookup failed during authentication: %v", err)
		return nil, err
	}

	// Account eligibility is checked before the password so a disabled
	// or locked account never reaches the bcrypt comparison.
	if state := entity.EvaluateAccountState(user, time.Now()); state != entity.AccountStateActive {
		uc.logger.Warnf("authentication denied for %q: account %s", user.Username, state)
		return nil, &AccountStateError{State: state}
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &entity.Principal{Username: user.Username, Role: user.Role}, nil
}
