package requestRepo

import (
	"context"

	"github.com/xtharshh/kwick-backend/database"
	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRequestRepository is the durable store for ad-hoc service requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, req *models.ServiceRequest) error
}

type mongoServiceRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRequestRepo returns a ServiceRequestRepository backed by MongoDB.
func NewMongoServiceRequestRepo() ServiceRequestRepository {
	return &mongoServiceRequestRepo{coll: database.DB().Collection("servicerequests")}
}
