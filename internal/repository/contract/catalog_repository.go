package contract

import (
	"context"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	CreateSolution(ctx context.Context, solution *entity.Solution) error
	FindAllSolutions(ctx context.Context, specs ...specification.Specification) ([]*entity.Solution, error)
	FindSolution(ctx context.Context, specs ...specification.Specification) (*entity.Solution, error)
	FindProduct(ctx context.Context, productId uuid.UUID) (*entity.CatalogProduct, error)
	CountSolutions(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllUnscoped(ctx context.Context) error
}
