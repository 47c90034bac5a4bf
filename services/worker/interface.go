package worker

import (
	"context"

	workerRepo "github.com/xtharshh/kwick-backend/database/repository/worker"
	"github.com/xtharshh/kwick-backend/models"
)

// WorkerService manages worker accounts and profiles.
type WorkerService interface {
	Register(ctx context.Context, w *models.Worker) (*models.Worker, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.Worker, error)
	UpdateProfile(ctx context.Context, mobileNumber string, fields map[string]any) (*models.Worker, error)
}

// DefaultWorkerService implements WorkerService.
type DefaultWorkerService struct {
	Repo workerRepo.WorkerRepository
}
