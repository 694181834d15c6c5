package mapper

import (
	"buildchem-be/internal/entity"
	"buildchem-be/internal/model"
)

type CareerMapper struct{}

func NewCareerMapper() *CareerMapper {
	return &CareerMapper{}
}

func (m *CareerMapper) ToEntity(r *model.CareerRecord) *entity.JobOpening {
	if r == nil {
		return nil
	}
	return &entity.JobOpening{
		Id:             r.Id,
		Title:          r.Title,
		Category:       r.Category,
		JobType:        r.JobType,
		Location:       r.Location,
		Qualifications: stringsOrEmpty(r.Qualifications),
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *CareerMapper) ToModel(e *entity.JobOpening) *model.CareerRecord {
	if e == nil {
		return nil
	}
	return &model.CareerRecord{
		Id:             e.Id,
		Title:          e.Title,
		Category:       e.Category,
		JobType:        e.JobType,
		Location:       e.Location,
		Qualifications: stringsOrEmpty(e.Qualifications),
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CareerMapper) ToEntities(records []*model.CareerRecord) []*entity.JobOpening {
	entities := make([]*entity.JobOpening, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

// stringsOrEmpty keeps JSON columns as [] instead of null.
func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
