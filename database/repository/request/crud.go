package requestRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"github.com/google/uuid"
)

// Create inserts a new service request with status open.
func (r *mongoServiceRequestRepo) Create(ctx context.Context, req *models.ServiceRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = "open"
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}
	return nil
}
