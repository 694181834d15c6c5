package mapper

import (
	"buildchem-be/internal/entity"
	"buildchem-be/internal/model"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(r *model.CompanyRecord) *entity.Company {
	if r == nil {
		return nil
	}
	return &entity.Company{
		Id:             r.Id,
		CompanyName:    r.CompanyName,
		Description:    r.Description,
		MainImage:      r.MainImage,
		Services:       stringsOrEmpty(r.Services),
		KeyFeatures:    stringsOrEmpty(r.KeyFeatures),
		PartnersImages: stringsOrEmpty(r.PartnersImages),
		Website:        r.Website,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *CompanyMapper) ToModel(e *entity.Company) *model.CompanyRecord {
	if e == nil {
		return nil
	}
	return &model.CompanyRecord{
		Id:             e.Id,
		CompanyName:    e.CompanyName,
		Description:    e.Description,
		MainImage:      e.MainImage,
		Services:       stringsOrEmpty(e.Services),
		KeyFeatures:    stringsOrEmpty(e.KeyFeatures),
		PartnersImages: stringsOrEmpty(e.PartnersImages),
		Website:        e.Website,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CompanyMapper) ToEntities(records []*model.CompanyRecord) []*entity.Company {
	entities := make([]*entity.Company, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
