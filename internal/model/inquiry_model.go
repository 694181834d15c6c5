package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Company   *string   `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Phone     string    `gorm:"type:varchar(64);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Message   *string   `gorm:"type:text"`
	Website   string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(32);not null;default:new"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (InquiryRecord) TableName() string {
	return "inquiries"
}

func (r *InquiryRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	if r.Status == "" {
		r.Status = "new"
	}
	return nil
}
