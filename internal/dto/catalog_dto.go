package dto

import (
	"github.com/google/uuid"
)

type ProductResponse struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	PdfUrl string    `json:"pdf_url"`
	HasPdf bool      `json:"has_pdf"`
}

type SeriesResponse struct {
	Id       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

type SolutionResponse struct {
	Id          uuid.UUID        `json:"id"`
	Index       int              `json:"index"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	MainImage   *string          `json:"main_image"`
	Series      []SeriesResponse `json:"series"`
}

// CatalogSeed is the leadctl seed file format. Any section may be omitted.
type CatalogSeed struct {
	Solutions []SolutionSeed `yaml:"solutions" validate:"dive"`
	Careers   []JobSeed      `yaml:"careers" validate:"dive"`
	Companies []CompanySeed  `yaml:"companies" validate:"dive"`
}

func (s *CatalogSeed) IsEmpty() bool {
	return len(s.Solutions) == 0 && len(s.Careers) == 0 && len(s.Companies) == 0
}

// DefaultWebsite assigns website to companies that do not name one.
func (s *CatalogSeed) DefaultWebsite(website string) {
	for i := range s.Companies {
		if s.Companies[i].Website == "" {
			s.Companies[i].Website = website
		}
	}
}

type SolutionSeed struct {
	Index       int          `yaml:"index"`
	Title       string       `yaml:"title" validate:"required"`
	Description string       `yaml:"description"`
	MainImage   string       `yaml:"main_image"`
	Series      []SeriesSeed `yaml:"series" validate:"dive"`
}

type SeriesSeed struct {
	Name     string        `yaml:"name" validate:"required"`
	Products []ProductSeed `yaml:"products" validate:"dive"`
}

type ProductSeed struct {
	Name   string `yaml:"name" validate:"required"`
	PdfUrl string `yaml:"pdf_url" validate:"omitempty,url"`
}

type SeedCatalogResponse struct {
	Solutions int `json:"solutions"`
	Series    int `json:"series"`
	Products  int `json:"products"`
	Jobs      int `json:"jobs"`
	Companies int `json:"companies"`
}
