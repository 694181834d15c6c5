package contract

import (
	"context"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/specification"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error)
	// FindOne returns nil, nil when nothing matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error)
	DeleteAll(ctx context.Context) error
}
