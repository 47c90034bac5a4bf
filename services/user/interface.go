package user

import (
	"context"

	userRepo "github.com/xtharshh/kwick-backend/database/repository/user"
	"github.com/xtharshh/kwick-backend/models"
)

// UserService manages customer accounts and profiles.
type UserService interface {
	Register(ctx context.Context, u *models.User) (*models.User, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// UpdateProfile applies the client-supplied field set after
	// whitelisting and date normalization.
	UpdateProfile(ctx context.Context, mobileNumber string, fields map[string]any) (*models.User, error)
	SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
