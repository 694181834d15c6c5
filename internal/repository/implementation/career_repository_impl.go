package implementation

import (
	"context"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/mapper"
	"buildchem-be/internal/model"
	"buildchem-be/internal/repository/contract"
	"buildchem-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CareerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CareerMapper
}

func NewCareerRepository(db *gorm.DB) contract.CareerRepository {
	return &CareerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCareerMapper(),
	}
}

func (r *CareerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CareerRepositoryImpl) Create(ctx context.Context, job *entity.JobOpening) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *CareerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobOpening, error) {
	var models []*model.CareerRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// DeleteAll wipes every job opening; used by reseeding.
func (r *CareerRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.CareerRecord{}).Error
}
