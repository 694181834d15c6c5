package implementation

import (
	"context"
	"errors"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/mapper"
	"buildchem-be/internal/model"
	"buildchem-be/internal/repository/contract"
	"buildchem-be/internal/repository/scope"
	"buildchem-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// CreateSolution inserts the solution with its series and products.
func (r *CatalogRepositoryImpl) CreateSolution(ctx context.Context, solution *entity.Solution) error {
	m := r.mapper.ToSolutionModel(solution)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	position := solution.Index - 1
	if position < 0 {
		position = 0
	}
	*solution = *r.mapper.ToSolutionEntity(m, position)
	return nil
}

func (r *CatalogRepositoryImpl) FindAllSolutions(ctx context.Context, specs ...specification.Specification) ([]*entity.Solution, error) {
	var models []*model.SolutionRecord
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.CatalogTree), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToSolutionEntities(models), nil
}

func (r *CatalogRepositoryImpl) FindSolution(ctx context.Context, specs ...specification.Specification) (*entity.Solution, error) {
	var m model.SolutionRecord
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.CatalogTree), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Without a stored index the fallback is the listing position.
	position := 0
	if m.Index == nil {
		var before int64
		err := r.db.WithContext(ctx).Model(&model.SolutionRecord{}).
			Where("created_at < ?", m.CreatedAt).
			Count(&before).Error
		if err != nil {
			return nil, err
		}
		position = int(before)
	}
	return r.mapper.ToSolutionEntity(&m, position), nil
}

func (r *CatalogRepositoryImpl) FindProduct(ctx context.Context, productId uuid.UUID) (*entity.CatalogProduct, error) {
	var m model.ProductRecord
	err := r.db.WithContext(ctx).
		Preload("Series.Solution").
		Where("id = ?", productId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToCatalogProduct(&m), nil
}

func (r *CatalogRepositoryImpl) CountSolutions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SolutionRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAllUnscoped wipes the catalog; used by reseeding.
func (r *CatalogRepositoryImpl) DeleteAllUnscoped(ctx context.Context) error {
	db := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := db.Delete(&model.ProductRecord{}).Error; err != nil {
		return err
	}
	if err := db.Delete(&model.SeriesRecord{}).Error; err != nil {
		return err
	}
	return db.Unscoped().Delete(&model.SolutionRecord{}).Error
}
