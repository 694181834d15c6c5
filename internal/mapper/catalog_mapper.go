package mapper

import (
	"buildchem-be/internal/entity"
	"buildchem-be/internal/model"
)

// CatalogMapper converts catalog records. Missing optional fields are defaulted
// here so call sites never deal with partial records.
type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

// ToSolutionEntity maps r; position is its 0-based place in the listing and
// backs the index when none is stored.
func (m *CatalogMapper) ToSolutionEntity(r *model.SolutionRecord, position int) *entity.Solution {
	if r == nil {
		return nil
	}

	index := position + 1
	if r.Index != nil && *r.Index > 0 {
		index = *r.Index
	}

	series := make([]*entity.Series, 0, len(r.Series))
	for i := range r.Series {
		series = append(series, m.ToSeriesEntity(&r.Series[i]))
	}

	return &entity.Solution{
		Id:          r.Id,
		Index:       index,
		Title:       r.Title,
		Description: r.Description,
		MainImage:   r.MainImage,
		Series:      series,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *CatalogMapper) ToSolutionEntities(records []*model.SolutionRecord) []*entity.Solution {
	entities := make([]*entity.Solution, len(records))
	for i, r := range records {
		entities[i] = m.ToSolutionEntity(r, i)
	}
	return entities
}

func (m *CatalogMapper) ToSeriesEntity(r *model.SeriesRecord) *entity.Series {
	if r == nil {
		return nil
	}
	products := make([]*entity.Product, 0, len(r.Products))
	for i := range r.Products {
		products = append(products, m.ToProductEntity(&r.Products[i]))
	}
	return &entity.Series{
		Id:         r.Id,
		SolutionId: r.SolutionId,
		Name:       r.Name,
		Products:   products,
	}
}

func (m *CatalogMapper) ToProductEntity(r *model.ProductRecord) *entity.Product {
	if r == nil {
		return nil
	}
	return &entity.Product{
		Id:       r.Id,
		SeriesId: r.SeriesId,
		Name:     r.Name,
		PdfUrl:   r.PdfUrl,
	}
}

// ToCatalogProduct needs r.Series and r.Series.Solution preloaded; absent
// parents yield empty labels.
func (m *CatalogMapper) ToCatalogProduct(r *model.ProductRecord) *entity.CatalogProduct {
	if r == nil {
		return nil
	}
	cp := &entity.CatalogProduct{Product: *m.ToProductEntity(r)}
	if r.Series != nil {
		cp.SeriesName = r.Series.Name
		if r.Series.Solution != nil {
			cp.SolutionTitle = r.Series.Solution.Title
		}
	}
	return cp
}

// ToSolutionModel maps a full solution tree for insertion.
func (m *CatalogMapper) ToSolutionModel(s *entity.Solution) *model.SolutionRecord {
	if s == nil {
		return nil
	}
	var index *int
	if s.Index > 0 {
		idx := s.Index
		index = &idx
	}

	series := make([]model.SeriesRecord, 0, len(s.Series))
	for _, se := range s.Series {
		products := make([]model.ProductRecord, 0, len(se.Products))
		for _, p := range se.Products {
			products = append(products, model.ProductRecord{
				Id:       p.Id,
				SeriesId: se.Id,
				Name:     p.Name,
				PdfUrl:   p.PdfUrl,
			})
		}
		series = append(series, model.SeriesRecord{
			Id:         se.Id,
			SolutionId: s.Id,
			Name:       se.Name,
			Products:   products,
		})
	}

	return &model.SolutionRecord{
		Id:          s.Id,
		Index:       index,
		Title:       s.Title,
		Description: s.Description,
		MainImage:   s.MainImage,
		Series:      series,
		CreatedAt:   s.CreatedAt,
	}
}
