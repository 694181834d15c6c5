package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a sister brand shown on the companies page. Website scopes
// which storefront lists it.
type Company struct {
	Id             uuid.UUID
	CompanyName    string
	Description    string
	MainImage      *string
	Services       []string
	KeyFeatures    []string
	PartnersImages []string
	Website        string
	CreatedAt      time.Time
}
