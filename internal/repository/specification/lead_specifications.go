package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByStatus filters catalog requests, inquiries and job openings by status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByCustomerEmail matches catalog requests case-insensitively.
type ByCustomerEmail struct {
	Email string
}

func (s ByCustomerEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(customer_email) = ?", strings.ToLower(s.Email))
}

// ByEmail matches inquiries case-insensitively.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = ?", strings.ToLower(s.Email))
}

// ByWebsite scopes companies to the storefront that lists them.
type ByWebsite struct {
	Website string
}

func (s ByWebsite) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("website = ?", s.Website)
}
