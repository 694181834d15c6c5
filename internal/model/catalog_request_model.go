package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequestedItem is one entry of catalog_requests.requested_items.
type RequestedItem struct {
	ProductId     string `json:"productId"`
	ProductName   string `json:"productName"`
	SeriesName    string `json:"seriesName"`
	SolutionTitle string `json:"solutionTitle"`
	PdfUrl        string `json:"pdfUrl"`
}

type CatalogRequestRecord struct {
	Id             uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	CustomerName   string                             `gorm:"type:varchar(255)"`
	CustomerEmail  string                             `gorm:"type:varchar(255);not null;index"`
	Company        string                             `gorm:"type:varchar(255)"`
	RequestedItems datatypes.JSONSlice[RequestedItem] `gorm:"not null"`
	Source         string                             `gorm:"type:varchar(100);not null"`
	Status         string                             `gorm:"type:varchar(32);not null;default:new;index"`
	RequestedAt    time.Time                          `gorm:"autoCreateTime;index"`
}

func (CatalogRequestRecord) TableName() string {
	return "catalog_requests"
}

func (r *CatalogRequestRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	if r.Status == "" {
		r.Status = "new"
	}
	return nil
}
