package service

import (
	"context"
	"strings"
	"testing"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/repository/memory"
	"buildchem-be/pkg/selection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectionFixture(t *testing.T) (ISelectionService, *fakeCatalogRepo, *recordingPublisher, uuid.UUID) {
	t.Helper()
	uow := newFakeUowFactory()
	productId := uuid.New()
	uow.uow.catalog.products = map[uuid.UUID]*entity.CatalogProduct{
		productId: {
			Product:       entity.Product{Id: productId, Name: "HP 1000", PdfUrl: "https://cdn.example/hp.pdf"},
			SeriesName:    "High Performance",
			SolutionTitle: "Concrete Admixtures",
		},
	}
	log := logger.NewNopLogger()
	pub := &recordingPublisher{}
	svc := NewSelectionService(memory.NewSelectionStore(0), "", NewCatalogService(uow, log), pub, log)
	return svc, uow.uow.catalog, pub, productId
}

func TestSelectionService_AddProductResolvesCatalog(t *testing.T) {
	svc, _, pub, productId := newSelectionFixture(t)
	ctx := context.Background()

	res, err := svc.AddProduct(ctx, "v1", &dto.AddSelectionItemRequest{ProductId: productId.String()})
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, 1, res.Selection.Count)
	assert.Equal(t, selection.StateNonEmpty.String(), res.Selection.State)
	assert.Equal(t, dto.SelectionItemResponse{
		ProductId:     productId.String(),
		ProductName:   "HP 1000",
		SeriesName:    "High Performance",
		SolutionTitle: "Concrete Admixtures",
		DocumentUrl:   "https://cdn.example/hp.pdf",
		HasDocument:   true,
	}, res.Selection.Items[0])

	require.Len(t, pub.messages, 1)
	assert.Equal(t, dto.SelectionChangedMessage{VisitorId: "v1", Kind: "ADDED", ProductId: productId.String(), Count: 1}, pub.messages[0])
}

func TestSelectionService_DuplicateAddIsNotAnError(t *testing.T) {
	svc, _, pub, productId := newSelectionFixture(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "v1", &dto.AddSelectionItemRequest{ProductId: productId.String()})
	require.NoError(t, err)

	res, err := svc.AddProduct(ctx, "v1", &dto.AddSelectionItemRequest{ProductId: productId.String()})
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Equal(t, 1, res.Selection.Count)
	assert.Len(t, pub.messages, 1)
}

func TestSelectionService_UnknownProduct(t *testing.T) {
	svc, _, _, _ := newSelectionFixture(t)

	_, err := svc.AddProduct(context.Background(), "v1", &dto.AddSelectionItemRequest{ProductId: uuid.NewString()})
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.AddProduct(context.Background(), "v1", &dto.AddSelectionItemRequest{ProductId: "not-a-uuid"})
	assert.True(t, apperror.IsValidation(err))
}

func TestSelectionService_VisitorsAreIsolated(t *testing.T) {
	svc, _, _, productId := newSelectionFixture(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "v1", &dto.AddSelectionItemRequest{ProductId: productId.String()})
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Show(ctx, "v1").Count)
	assert.Equal(t, 0, svc.Show(ctx, "v2").Count)
	assert.NotNil(t, svc.Show(ctx, "v2").Items)
}

func TestSelectionService_RemoveAndClear(t *testing.T) {
	svc, _, pub, productId := newSelectionFixture(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "v1", &dto.AddSelectionItemRequest{ProductId: productId.String()})
	require.NoError(t, err)

	res := svc.RemoveProduct(ctx, "v1", productId.String())
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, selection.StateEmpty.String(), res.State)

	res = svc.Clear(ctx, "v1")
	assert.Equal(t, 0, res.Count)

	kinds := make([]string, 0, len(pub.messages))
	for _, m := range pub.messages {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []string{"ADDED", "REMOVED", "CLEARED"}, kinds)
}

func TestSelectionService_RemoveAcceptsUppercaseId(t *testing.T) {
	svc, _, _, productId := newSelectionFixture(t)
	ctx := context.Background()
	upper := strings.ToUpper(productId.String())

	res, err := svc.AddProduct(ctx, "v1", &dto.AddSelectionItemRequest{ProductId: upper})
	require.NoError(t, err)
	require.Equal(t, 1, res.Selection.Count)
	assert.Equal(t, productId.String(), res.Selection.Items[0].ProductId)

	removed := svc.RemoveProduct(ctx, "v1", upper)
	assert.Equal(t, 0, removed.Count)
	assert.Equal(t, 0, svc.Show(ctx, "v1").Count)
}
