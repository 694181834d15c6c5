package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CatalogRequestStatus string

const (
	CatalogRequestStatusNew     CatalogRequestStatus = "new"
	CatalogRequestStatusHandled CatalogRequestStatus = "handled"

	CatalogRequestSource = "Website Catalog Request"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s has the address shape the site accepts.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

type ContactInfo struct {
	Name    string
	Email   string
	Company string
}

// CatalogRequest is the durable record of one submitted selection.
// Items is a snapshot; it never aliases a live session.
type CatalogRequest struct {
	Id          uuid.UUID
	Contact     ContactInfo
	Items       []SelectionItem
	Source      string
	Status      CatalogRequestStatus
	RequestedAt time.Time
}

// CatalogRequestBatch is what the notifier receives: contact plus normalized items.
type CatalogRequestBatch struct {
	RequestId uuid.UUID
	Contact   ContactInfo
	Items     []SelectionItem
}
