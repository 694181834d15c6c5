package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobOpeningResponse struct {
	Id             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	JobType        string    `json:"job_type"`
	Location       string    `json:"location"`
	Qualifications []string  `json:"qualifications"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type CompanyResponse struct {
	Id             uuid.UUID `json:"id"`
	CompanyName    string    `json:"company_name"`
	Description    string    `json:"description"`
	MainImage      *string   `json:"main_image"`
	Services       []string  `json:"services"`
	KeyFeatures    []string  `json:"key_features"`
	PartnersImages []string  `json:"partners_images"`
	Website        string    `json:"website"`
}

type JobSeed struct {
	Title          string   `yaml:"title" validate:"required"`
	Category       string   `yaml:"category"`
	JobType        string   `yaml:"job_type"`
	Location       string   `yaml:"location"`
	Qualifications []string `yaml:"qualifications"`

	// Status defaults to Open.
	Status string `yaml:"status" validate:"omitempty,oneof=Open Closed"`
}

type CompanySeed struct {
	CompanyName    string   `yaml:"company_name" validate:"required"`
	Description    string   `yaml:"description"`
	MainImage      string   `yaml:"main_image" validate:"omitempty,url"`
	Services       []string `yaml:"services"`
	KeyFeatures    []string `yaml:"key_features"`
	PartnersImages []string `yaml:"partners_images" validate:"dive,url"`

	// Website defaults to the storefront the server is configured for.
	Website string `yaml:"website"`
}
