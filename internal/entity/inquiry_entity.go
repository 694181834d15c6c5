package entity

import (
	"time"

	"github.com/google/uuid"
)

const InquiryStatusNew = "new"

type Inquiry struct {
	Id        uuid.UUID
	FullName  string
	Company   *string
	Email     string
	Phone     string
	Subject   string
	Message   *string
	Website   string
	Status    string
	CreatedAt time.Time
}

// JobApplication is emailed only; it has no table.
type JobApplication struct {
	JobId    string
	JobTitle string
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Message  string
}
