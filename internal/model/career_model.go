package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CareerRecord struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title          string                      `gorm:"type:varchar(255);not null"`
	Category       string                      `gorm:"type:varchar(100)"`
	JobType        string                      `gorm:"type:varchar(64)"`
	Location       string                      `gorm:"type:varchar(255)"`
	Qualifications datatypes.JSONSlice[string]
	Status         string                      `gorm:"type:varchar(32);not null;default:Open;index"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime;index"`
}

func (CareerRecord) TableName() string {
	return "careers"
}

func (r *CareerRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	if r.Status == "" {
		r.Status = "Open"
	}
	return nil
}
