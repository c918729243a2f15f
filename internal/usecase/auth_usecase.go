package usecase

import (
	"context"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/state"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	authClient AuthClient
	registry   *state.Registry
}

func NewAuthUseCase(userRepo repository.UserRepository, authClient AuthClient, registry *state.Registry) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		authClient: authClient,
		registry:   registry,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Provider:  "password",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	uc.registry.Session(ctx, uid).SetUser(ctx, user)

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authClient.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.authClient.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	uc.registry.Session(ctx, uid).SetUser(ctx, user)

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// Logout revokes the user's tokens and clears the persisted session and
// cart snapshots.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.authClient.SignOut(ctx, uid); err != nil {
		return errors.Internal("Failed to sign out", err)
	}

	uc.registry.Session(ctx, uid).Clear(ctx)
	uc.registry.Cart(ctx, uid).Clear(ctx)
	return nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
