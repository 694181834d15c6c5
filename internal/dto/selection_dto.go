package dto

import (
	"time"

	"github.com/google/uuid"
)

type SelectionItemResponse struct {
	ProductId     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SeriesName    string `json:"series_name"`
	SolutionTitle string `json:"solution_title"`
	DocumentUrl   string `json:"document_url"`
	HasDocument   bool   `json:"has_document"`
}

type SelectionResponse struct {
	Items []SelectionItemResponse `json:"items"`
	Count int                     `json:"count"`
	State string                  `json:"state"`
}

type AddSelectionItemRequest struct {
	ProductId string `json:"product_id" validate:"required,uuid"`
}

type AddSelectionItemResponse struct {
	Added     bool              `json:"added"`
	Selection SelectionResponse `json:"selection"`
}

// SubmitCatalogRequest carries only the contact; items come from the visitor's selection.
// Email is checked by the workflow so that an empty selection is reported first.
type SubmitCatalogRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name" validate:"max=200"`
	Company string `json:"company" validate:"max=200"`
}

type SubmitCatalogResponse struct {
	RequestId   uuid.UUID `json:"request_id"`
	ItemCount   int       `json:"item_count"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SelectionChangedMessage travels on the in-process bus and is pushed to open tabs.
type SelectionChangedMessage struct {
	VisitorId string `json:"visitor_id"`
	Kind      string `json:"kind"`
	ProductId string `json:"product_id,omitempty"`
	Count     int    `json:"count"`
}
