package workerRepo

import (
	"context"

	"github.com/xtharshh/kwick-backend/database"
	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// WorkerLookup is the minimal read surface the negotiation engine needs to
// resolve an offering worker from its declared mobile number.
type WorkerLookup interface {
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.Worker, error)
}

// WorkerRepository is the durable store for worker accounts.
type WorkerRepository interface {
	WorkerLookup
	Create(ctx context.Context, worker *models.Worker) error
	// UpdateByMobileNumber applies the given field set and returns the
	// updated document, or mongo.ErrNoDocuments if no worker matches.
	UpdateByMobileNumber(ctx context.Context, mobileNumber string, fields bson.M) (*models.Worker, error)
	SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.Worker, error)
}

type mongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo returns a WorkerRepository backed by MongoDB.
func NewMongoWorkerRepo() WorkerRepository {
	return &mongoWorkerRepo{coll: database.DB().Collection("workers")}
}
