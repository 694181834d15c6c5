package assetlink

import (
	"testing"

	"buildchem-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceDownload(t *testing.T) {
	n := NewNormalizer([]string{"cdn.example", "storage.googleapis.com"})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "cloudinary auto format",
			in:   "https://res.cloudinary.com/buildchem/image/upload/f_auto,q_auto/v1700/hp-1000.pdf",
			want: "https://res.cloudinary.com/buildchem/image/upload/fl_attachment/v1700/hp-1000.pdf",
		},
		{
			name: "cloudinary plain upload",
			in:   "https://res.cloudinary.com/buildchem/raw/upload/v1700/pc-700.pdf",
			want: "https://res.cloudinary.com/buildchem/raw/upload/fl_attachment/v1700/pc-700.pdf",
		},
		{
			name: "cloudinary already attachment",
			in:   "https://res.cloudinary.com/buildchem/raw/upload/fl_attachment/v1700/pc-700.pdf",
			want: "https://res.cloudinary.com/buildchem/raw/upload/fl_attachment/v1700/pc-700.pdf",
		},
		{
			name: "configured host",
			in:   "https://cdn.example/a.pdf",
			want: "https://cdn.example/a.pdf?download=1",
		},
		{
			name: "configured host keeps query",
			in:   "https://storage.googleapis.com/bucket/a.pdf?v=3",
			want: "https://storage.googleapis.com/bucket/a.pdf?download=1&v=3",
		},
		{
			name: "subdomain of configured host",
			in:   "https://eu.cdn.example/a.pdf",
			want: "https://eu.cdn.example/a.pdf?download=1",
		},
		{
			name: "unknown host",
			in:   "https://example.com/catalogs/rcc.pdf",
			want: "https://example.com/catalogs/rcc.pdf",
		},
		{name: "empty", in: "", want: ""},
		{name: "relative path", in: "/files/a.pdf", want: "/files/a.pdf"},
		{name: "unparseable", in: "http://[::1", want: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ForceDownload(tt.in))
		})
	}
}

func TestForceDownloadIsIdempotent(t *testing.T) {
	n := NewNormalizer([]string{"cdn.example"})
	for _, in := range []string{
		"https://res.cloudinary.com/x/image/upload/f_auto,q_auto/a.pdf",
		"https://cdn.example/a.pdf",
	} {
		once := n.ForceDownload(in)
		assert.Equal(t, once, n.ForceDownload(once), in)
	}
}

func TestNormalizeItemsKeepsEmptyDocuments(t *testing.T) {
	n := NewNormalizer([]string{"cdn.example"})
	items := []entity.SelectionItem{
		{ProductId: "A", DocumentUrl: "https://cdn.example/a.pdf"},
		{ProductId: "B", DocumentUrl: ""},
	}

	out := n.NormalizeItems(items)
	require.Len(t, out, 2)
	assert.Equal(t, "https://cdn.example/a.pdf?download=1", out[0].DocumentUrl)
	assert.Equal(t, "B", out[1].ProductId)
	assert.Equal(t, "", out[1].DocumentUrl)

	// input untouched
	assert.Equal(t, "https://cdn.example/a.pdf", items[0].DocumentUrl)
}
