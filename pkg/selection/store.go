package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
)

const (
	// DefaultKey is the storage key of a selection when no visitor scoping is applied.
	DefaultKey = "solutions-cart"

	// SchemaVersion is written with every save. Version 0 is the bare JSON array
	// format written by the old site, still accepted on load.
	SchemaVersion = 1
)

var ErrUnsupportedVersion = errors.New("unsupported selection schema version")

// KeyValueStore is the raw persistence backend. Implementations may fail;
// StoreAdapter never lets that reach a session.
type KeyValueStore interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Store loads and saves the full item list of one session.
type Store interface {
	Load() []entity.SelectionItem
	Save(items []entity.SelectionItem) error
}

type persistedSelection struct {
	Version int                    `json:"version"`
	Items   []entity.SelectionItem `json:"items"`
}

// legacyItem is an entry of the unversioned array format.
type legacyItem struct {
	ProductId     string `json:"productId"`
	ProductName   string `json:"productName"`
	SeriesName    string `json:"seriesName"`
	SolutionTitle string `json:"solutionTitle"`
	PdfUrl        string `json:"pdfUrl"`
	DocumentUrl   string `json:"documentUrl"`
}

// StoreAdapter persists a selection under one fixed key.
type StoreAdapter struct {
	kv     KeyValueStore
	key    string
	logger logger.ILogger
}

func NewStoreAdapter(kv KeyValueStore, key string, log logger.ILogger) *StoreAdapter {
	if key == "" {
		key = DefaultKey
	}
	return &StoreAdapter{kv: kv, key: key, logger: log}
}

// Load returns the persisted items, or an empty slice when the key is absent,
// unreadable or malformed. It never fails.
func (a *StoreAdapter) Load() []entity.SelectionItem {
	raw, found, err := a.kv.Get(a.key)
	if err != nil {
		a.report("load", err)
		return []entity.SelectionItem{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []entity.SelectionItem{}
	}

	items, err := decodeSelection(raw)
	if err != nil {
		a.report("load", err)
		return []entity.SelectionItem{}
	}
	return items
}

// Save writes the full list. The error is informational: callers may ignore it.
func (a *StoreAdapter) Save(items []entity.SelectionItem) error {
	payload := persistedSelection{
		Version: SchemaVersion,
		Items:   entity.CloneSelectionItems(items),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return a.report("save", err)
	}
	if err := a.kv.Set(a.key, string(data)); err != nil {
		return a.report("save", err)
	}
	return nil
}

func (a *StoreAdapter) report(op string, err error) error {
	perr := &apperror.PersistenceError{Op: op, Key: a.key, Err: err}
	if a.logger != nil {
		a.logger.Warn("Selection", "Selection store "+op+" failed", map[string]interface{}{
			"key":   a.key,
			"error": err.Error(),
		})
	}
	return perr
}

func decodeSelection(raw string) ([]entity.SelectionItem, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") {
		var legacy []legacyItem
		if err := json.Unmarshal([]byte(trimmed), &legacy); err != nil {
			return nil, err
		}
		items := make([]entity.SelectionItem, 0, len(legacy))
		for _, l := range legacy {
			url := l.DocumentUrl
			if url == "" {
				url = l.PdfUrl
			}
			items = append(items, entity.SelectionItem{
				ProductId:     l.ProductId,
				ProductName:   l.ProductName,
				SeriesName:    l.SeriesName,
				SolutionTitle: l.SolutionTitle,
				DocumentUrl:   url,
			})
		}
		return sanitize(items), nil
	}

	var p persistedSelection
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return nil, err
	}
	if p.Version < 1 || p.Version > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	}
	return sanitize(p.Items), nil
}

// sanitize drops entries without a product id and keeps the first of any duplicate,
// so a hand-edited or corrupted value cannot break the uniqueness invariant.
func sanitize(items []entity.SelectionItem) []entity.SelectionItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]entity.SelectionItem, 0, len(items))
	for _, it := range items {
		if it.ProductId == "" {
			continue
		}
		if _, dup := seen[it.ProductId]; dup {
			continue
		}
		seen[it.ProductId] = struct{}{}
		out = append(out, it)
	}
	return out
}
