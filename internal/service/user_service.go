package service

import (
	"context"

	"eduhub/internal/models"
	"eduhub/internal/repository"
)

// UserService implements platform user management.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]models.User, int64, error) {
	if filter.Role != "" && !models.ValidPlatformRole(filter.Role) {
		return nil, 0, models.NewValidationError("unknown role " + filter.Role)
	}
	return s.userRepo.List(ctx, filter)
}

// SetRole changes a user's platform role. Admins cannot demote themselves so
// the platform always keeps at least the acting admin.
func (s *UserService) SetRole(ctx context.Context, actingAdminID, targetID uint, role string) (*models.User, error) {
	if !models.ValidPlatformRole(role) {
		return nil, models.NewValidationError("unknown role " + role)
	}
	if actingAdminID == targetID && models.PlatformRole(role) != models.PlatformRoleAdmin {
		return nil, models.NewValidationError("admins cannot demote themselves")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Role = models.PlatformRole(role)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
