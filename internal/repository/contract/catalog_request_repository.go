package contract

import (
	"context"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRequestRepository interface {
	// Create stores the request and fills in Id, Status and RequestedAt.
	Create(ctx context.Context, request *entity.CatalogRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CatalogRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CatalogRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CatalogRequestStatus) error
}
