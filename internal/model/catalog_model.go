package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SolutionRecord struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Index       *int           `gorm:"column:sort_index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	MainImage   *string        `gorm:"type:text"`
	Series      []SeriesRecord `gorm:"foreignKey:SolutionId;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (SolutionRecord) TableName() string {
	return "solutions"
}

func (r *SolutionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}

type SeriesRecord struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SolutionId uuid.UUID       `gorm:"type:uuid;not null;index"`
	Solution   *SolutionRecord `gorm:"foreignKey:SolutionId"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Products   []ProductRecord `gorm:"foreignKey:SeriesId;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (SeriesRecord) TableName() string {
	return "series"
}

func (r *SeriesRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}

type ProductRecord struct {
	Id        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	SeriesId  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Series    *SeriesRecord `gorm:"foreignKey:SeriesId"`
	Name      string        `gorm:"type:varchar(255);not null"`
	PdfUrl    string        `gorm:"type:text"`
	CreatedAt time.Time     `gorm:"autoCreateTime"`
}

func (ProductRecord) TableName() string {
	return "products"
}

func (r *ProductRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}
