package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

type JobOpening struct {
	Id             uuid.UUID
	Title          string
	Category       string
	JobType        string
	Location       string
	Qualifications []string
	Status         string
	CreatedAt      time.Time
}
