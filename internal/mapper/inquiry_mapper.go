package mapper

import (
	"buildchem-be/internal/entity"
	"buildchem-be/internal/model"
)

type InquiryMapper struct{}

func NewInquiryMapper() *InquiryMapper {
	return &InquiryMapper{}
}

func (m *InquiryMapper) ToEntity(r *model.InquiryRecord) *entity.Inquiry {
	if r == nil {
		return nil
	}
	return &entity.Inquiry{
		Id:        r.Id,
		FullName:  r.FullName,
		Company:   r.Company,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		Website:   r.Website,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

func (m *InquiryMapper) ToModel(e *entity.Inquiry) *model.InquiryRecord {
	if e == nil {
		return nil
	}
	return &model.InquiryRecord{
		Id:        e.Id,
		FullName:  e.FullName,
		Company:   e.Company,
		Email:     e.Email,
		Phone:     e.Phone,
		Subject:   e.Subject,
		Message:   e.Message,
		Website:   e.Website,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

func (m *InquiryMapper) ToEntities(records []*model.InquiryRecord) []*entity.Inquiry {
	entities := make([]*entity.Inquiry, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
