package worker

import (
	"context"
	"errors"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateMobile signals a registration against an existing mobile number.
var ErrDuplicateMobile = errors.New("worker with this mobile number already exists")

// Register creates a new worker account.
func (s *DefaultWorkerService) Register(ctx context.Context, w *models.Worker) (*models.Worker, error) {
	if err := user.ValidateMobileNumber(w.MobileNumber); err != nil {
		return nil, err
	}

	if _, err := s.Repo.GetByMobileNumber(ctx, w.MobileNumber); err == nil {
		return nil, ErrDuplicateMobile
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// GetByMobileNumber fetches a worker profile by mobile number.
func (s *DefaultWorkerService) GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.Worker, error) {
	return s.Repo.GetByMobileNumber(ctx, mobileNumber)
}

// UpdateProfile applies a whitelisted field set to the worker's profile.
// The same field whitelist and date handling as customer profiles apply.
func (s *DefaultWorkerService) UpdateProfile(ctx context.Context, mobileNumber string, fields map[string]any) (*models.Worker, error) {
	update, err := user.BuildProfileUpdate(fields)
	if err != nil {
		return nil, err
	}
	if len(update) == 0 {
		return s.Repo.GetByMobileNumber(ctx, mobileNumber)
	}
	return s.Repo.UpdateByMobileNumber(ctx, mobileNumber, update)
}
