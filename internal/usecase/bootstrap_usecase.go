package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// BootstrapUsecase ensures the baseline roles and seed accounts exist.
// It runs once at startup, before request traffic is accepted, and is
// idempotent: repeated runs against an already seeded store change
// nothing. Concurrent process starts are covered by the store's unique
// indexes, not by in-process locking.
type BootstrapUsecase struct {
	roleRepo contract.IRoleRepository
	userRepo contract.IUserRepository
	hasher   contract.IHasher
	uuidGen  contract.IUUIDGenerator
	logger   usecasecontract.IAppLogger
	config   usecasecontract.IConfigProvider
}

// NewBootstrapUsecase creates a new BootstrapUsecase instance.
func NewBootstrapUsecase(
	roleRepo contract.IRoleRepository,
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *BootstrapUsecase {
	return &BootstrapUsecase{
		roleRepo: roleRepo,
		userRepo: userRepo,
		hasher:   hasher,
		uuidGen:  uuidGen,
		logger:   logger,
		config:   cfg,
	}
}

// Run seeds roles and accounts. Any error is fatal to startup: the
// caller must not serve traffic from a partially seeded store.
func (uc *BootstrapUsecase) Run(ctx context.Context) error {
	if err := uc.ensureRole(ctx, entity.UserRoleUser); err != nil {
		return fmt.Errorf("ensure role %s: %w", entity.UserRoleUser, err)
	}
	if err := uc.ensureRole(ctx, entity.UserRoleAdmin); err != nil {
		return fmt.Errorf("ensure role %s: %w", entity.UserRoleAdmin, err)
	}

	// user1 is seeded locked on purpose; it is the fixture that
	// exercises the locked-account denial.
	if err := uc.ensureUser(ctx, "user1", "user1@example.com", uc.config.GetSeedUserPassword(), entity.UserRoleUser, false); err != nil {
		return fmt.Errorf("seed user1: %w", err)
	}
	if err := uc.ensureUser(ctx, "admin", "admin@example.com", uc.config.GetSeedAdminPassword(), entity.UserRoleAdmin, true); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (uc *BootstrapUsecase) ensureRole(ctx context.Context, name entity.UserRole) error {
	_, err := uc.roleRepo.GetRoleByName(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, contract.ErrRoleNotFound) {
		return err
	}
	uc.logger.Infof("creating role %s", name)
	return uc.roleRepo.CreateRole(ctx, &entity.Role{
		ID:   uc.uuidGen.NewUUID(),
		Name: name,
	})
}

func (uc *BootstrapUsecase) ensureUser(ctx context.Context, username, email, password string, role entity.UserRole, nonLocked bool) error {
	exists, err := uc.userRepo.ExistsUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	// Seed credentials are always stored hashed, never as plaintext.
	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &entity.User{
		ID:                    uc.uuidGen.NewUUID(),
		Username:              username,
		Email:                 email,
		PasswordHash:          hashedPassword,
		Role:                  role,
		Enabled:               true,
		AccountNonLocked:      nonLocked,
		AccountNonExpired:     true,
		AccountExpiryDate:     now.AddDate(1, 0, 0),
		CredentialsNonExpired: true,
		CredentialsExpiryDate: now.AddDate(1, 0, 0),
		TwoFactorEnabled:      false,
		SignUpMethod:          "email",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	uc.logger.Infof("seeding account %q with role %s", username, role)
	return uc.userRepo.CreateUser(ctx, user)
}
