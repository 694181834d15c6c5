package contract

import (
	"context"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/specification"
)

type CareerRepository interface {
	Create(ctx context.Context, job *entity.JobOpening) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobOpening, error)
	DeleteAll(ctx context.Context) error
}
