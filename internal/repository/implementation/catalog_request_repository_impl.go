package implementation

import (
	"context"
	"errors"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/mapper"
	"buildchem-be/internal/model"
	"buildchem-be/internal/repository/contract"
	"buildchem-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogRequestMapper
}

func NewCatalogRequestRepository(db *gorm.DB) contract.CatalogRequestRepository {
	return &CatalogRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogRequestMapper(),
	}
}

func (r *CatalogRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CatalogRequestRepositoryImpl) Create(ctx context.Context, request *entity.CatalogRequest) error {
	m := r.mapper.ToModel(request)
	// RequestedAt is always the write time, whatever the caller set.
	m.RequestedAt = r.db.NowFunc()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *CatalogRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CatalogRequest, error) {
	var m model.CatalogRequestRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CatalogRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CatalogRequest, error) {
	var models []*model.CatalogRequestRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CatalogRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CatalogRequestRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CatalogRequestRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CatalogRequestStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.CatalogRequestRecord{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
