package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CompanyRecord struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CompanyName    string                      `gorm:"type:varchar(255);not null;index"`
	Description    string                      `gorm:"type:text"`
	MainImage      *string                     `gorm:"type:varchar(1024)"`
	Services       datatypes.JSONSlice[string]
	KeyFeatures    datatypes.JSONSlice[string]
	PartnersImages datatypes.JSONSlice[string]
	Website        string                      `gorm:"type:varchar(255);not null;index"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
}

func (CompanyRecord) TableName() string {
	return "companies"
}

func (r *CompanyRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}
