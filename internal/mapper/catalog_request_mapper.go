package mapper

import (
	"buildchem-be/internal/entity"
	"buildchem-be/internal/model"
)

type CatalogRequestMapper struct{}

func NewCatalogRequestMapper() *CatalogRequestMapper {
	return &CatalogRequestMapper{}
}

func (m *CatalogRequestMapper) ToEntity(r *model.CatalogRequestRecord) *entity.CatalogRequest {
	if r == nil {
		return nil
	}

	items := make([]entity.SelectionItem, 0, len(r.RequestedItems))
	for _, it := range r.RequestedItems {
		items = append(items, entity.SelectionItem{
			ProductId:     it.ProductId,
			ProductName:   it.ProductName,
			SeriesName:    it.SeriesName,
			SolutionTitle: it.SolutionTitle,
			DocumentUrl:   it.PdfUrl,
		})
	}

	status := entity.CatalogRequestStatus(r.Status)
	if status == "" {
		status = entity.CatalogRequestStatusNew
	}

	return &entity.CatalogRequest{
		Id: r.Id,
		Contact: entity.ContactInfo{
			Name:    r.CustomerName,
			Email:   r.CustomerEmail,
			Company: r.Company,
		},
		Items:       items,
		Source:      r.Source,
		Status:      status,
		RequestedAt: r.RequestedAt,
	}
}

func (m *CatalogRequestMapper) ToModel(e *entity.CatalogRequest) *model.CatalogRequestRecord {
	if e == nil {
		return nil
	}

	items := make([]model.RequestedItem, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, model.RequestedItem{
			ProductId:     it.ProductId,
			ProductName:   it.ProductName,
			SeriesName:    it.SeriesName,
			SolutionTitle: it.SolutionTitle,
			PdfUrl:        it.DocumentUrl,
		})
	}

	source := e.Source
	if source == "" {
		source = entity.CatalogRequestSource
	}

	return &model.CatalogRequestRecord{
		Id:             e.Id,
		CustomerName:   e.Contact.Name,
		CustomerEmail:  e.Contact.Email,
		Company:        e.Contact.Company,
		RequestedItems: items,
		Source:         source,
		Status:         string(e.Status),
		RequestedAt:    e.RequestedAt,
	}
}

func (m *CatalogRequestMapper) ToEntities(records []*model.CatalogRequestRecord) []*entity.CatalogRequest {
	entities := make([]*entity.CatalogRequest, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
