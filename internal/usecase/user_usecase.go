package usecase

import (
	"context"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/state"
	"lokapasar/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	registry *state.Registry
}

func NewUserUseCase(userRepo repository.UserRepository, registry *state.Registry) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		registry: registry,
	}
}

type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	AvatarURL *string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.registry.Session(ctx, userID).SetUser(ctx, user)
	return user, nil
}

func (uc *UserUseCase) ListAddresses(ctx context.Context, userID string) []entity.Address {
	return uc.registry.Session(ctx, userID).Addresses()
}

func (uc *UserUseCase) AddAddress(ctx context.Context, userID string, address entity.Address) entity.Address {
	return uc.registry.Session(ctx, userID).AddAddress(ctx, address)
}

func (uc *UserUseCase) UpdateAddress(ctx context.Context, userID string, address entity.Address) error {
	return uc.registry.Session(ctx, userID).UpdateAddress(ctx, address)
}

func (uc *UserUseCase) RemoveAddress(ctx context.Context, userID, addressID string) {
	uc.registry.Session(ctx, userID).RemoveAddress(ctx, addressID)
}

func (uc *UserUseCase) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	return uc.registry.Session(ctx, userID).SetDefaultAddress(ctx, addressID)
}
