package entity

import (
	"time"

	"github.com/google/uuid"
)

type Solution struct {
	Id          uuid.UUID
	Index       int
	Title       string
	Description string
	MainImage   *string
	Series      []*Series
	CreatedAt   time.Time
}

type Series struct {
	Id         uuid.UUID
	SolutionId uuid.UUID
	Name       string
	Products   []*Product
}

type Product struct {
	Id       uuid.UUID
	SeriesId uuid.UUID
	Name     string
	PdfUrl   string
}

// CatalogProduct is a product together with the labels of its ancestors.
type CatalogProduct struct {
	Product       Product
	SeriesName    string
	SolutionTitle string
}

func (p CatalogProduct) ToSelectionItem() SelectionItem {
	return SelectionItem{
		ProductId:     p.Product.Id.String(),
		ProductName:   p.Product.Name,
		SeriesName:    p.SeriesName,
		SolutionTitle: p.SolutionTitle,
		DocumentUrl:   p.Product.PdfUrl,
	}
}
