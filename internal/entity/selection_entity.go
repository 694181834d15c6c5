package entity

// SelectionItem is one product a visitor wants the technical datasheet for.
// The json tags are the persisted session format and must stay stable.
type SelectionItem struct {
	ProductId     string `json:"productId"`
	ProductName   string `json:"productName"`
	SeriesName    string `json:"seriesName"`
	SolutionTitle string `json:"solutionTitle"`
	DocumentUrl   string `json:"documentUrl"`
}

// HasDocument reports whether the datasheet exists yet.
func (i SelectionItem) HasDocument() bool {
	return i.DocumentUrl != ""
}

// CloneSelectionItems returns an independent copy of items.
func CloneSelectionItems(items []SelectionItem) []SelectionItem {
	out := make([]SelectionItem, len(items))
	copy(out, items)
	return out
}
