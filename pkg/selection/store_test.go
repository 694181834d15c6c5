package selection

import (
	"errors"
	"testing"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapKV struct {
	data    map[string]string
	getErr  error
	setErr  error
	setHits int
}

func newMapKV() *mapKV {
	return &mapKV{data: map[string]string{}}
}

func (m *mapKV) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapKV) Set(key, value string) error {
	m.setHits++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func sampleItems() []entity.SelectionItem {
	return []entity.SelectionItem{
		{ProductId: "p-1", ProductName: "HP 1000", SeriesName: "High Performance", SolutionTitle: "Concrete Admixtures", DocumentUrl: "https://example.com/catalogs/hp-1000.pdf"},
		{ProductId: "p-2", ProductName: "PC 700", SeriesName: "Polycarboxylate", SolutionTitle: "Concrete Admixtures", DocumentUrl: ""},
		{ProductId: "p-3", ProductName: "BUILDCHEM UW", SeriesName: "Underwater", SolutionTitle: "Grouts", DocumentUrl: "https://res.cloudinary.com/demo/image/upload/uw.pdf"},
	}
}

func TestStoreAdapter_RoundTrip(t *testing.T) {
	kv := newMapKV()
	adapter := NewStoreAdapter(kv, "solutions-cart:v1", logger.NewNopLogger())

	items := sampleItems()
	require.NoError(t, adapter.Save(items))

	got := adapter.Load()
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, kv.data["solutions-cart:v1"], `"version":1`)
}

func TestStoreAdapter_LoadFailsSoft(t *testing.T) {
	tests := []struct {
		name  string
		setup func(kv *mapKV)
	}{
		{name: "absent key", setup: func(kv *mapKV) {}},
		{name: "blank value", setup: func(kv *mapKV) { kv.data[DefaultKey] = "   " }},
		{name: "malformed json", setup: func(kv *mapKV) { kv.data[DefaultKey] = "{not json" }},
		{name: "future schema version", setup: func(kv *mapKV) { kv.data[DefaultKey] = `{"version":99,"items":[]}` }},
		{name: "missing version", setup: func(kv *mapKV) { kv.data[DefaultKey] = `{"items":[{"productId":"x"}]}` }},
		{name: "backend error", setup: func(kv *mapKV) { kv.getErr = errors.New("connection refused") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMapKV()
			tt.setup(kv)
			adapter := NewStoreAdapter(kv, "", logger.NewNopLogger())

			got := adapter.Load()
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestStoreAdapter_LoadsLegacyArray(t *testing.T) {
	kv := newMapKV()
	kv.data[DefaultKey] = `[
		{"productId":"a","productName":"SI 90-112","seriesName":"Sealers","solutionTitle":"Waterproofing","pdfUrl":"https://example.com/si.pdf"},
		{"productId":"a","productName":"duplicate","pdfUrl":""},
		{"productId":"","productName":"no id"},
		{"productId":"b","productName":"RCC","pdfUrl":""}
	]`
	adapter := NewStoreAdapter(kv, DefaultKey, nil)

	got := adapter.Load()
	want := []entity.SelectionItem{
		{ProductId: "a", ProductName: "SI 90-112", SeriesName: "Sealers", SolutionTitle: "Waterproofing", DocumentUrl: "https://example.com/si.pdf"},
		{ProductId: "b", ProductName: "RCC"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("legacy Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreAdapter_SaveReportsFailure(t *testing.T) {
	kv := newMapKV()
	kv.setErr = errors.New("quota exceeded")
	adapter := NewStoreAdapter(kv, DefaultKey, logger.NewNopLogger())

	err := adapter.Save(sampleItems())
	require.Error(t, err)

	var perr *apperror.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "save", perr.Op)
	assert.Equal(t, DefaultKey, perr.Key)
	assert.ErrorIs(t, err, kv.setErr)
}

func TestStoreAdapter_SaveEmptyWritesEmptyList(t *testing.T) {
	kv := newMapKV()
	adapter := NewStoreAdapter(kv, DefaultKey, nil)

	require.NoError(t, adapter.Save(nil))
	assert.JSONEq(t, `{"version":1,"items":[]}`, kv.data[DefaultKey])
}
