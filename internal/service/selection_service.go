package service

import (
	"context"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/pkg/selection"

	"github.com/google/uuid"
)

// SelectionItemResolver turns a catalog product id into a selection item.
type SelectionItemResolver interface {
	ResolveSelectionItem(ctx context.Context, productId uuid.UUID) (entity.SelectionItem, error)
}

// SelectionOpener hands out the visitor's session. One session per request.
type SelectionOpener interface {
	Open(ctx context.Context, visitorId string) *selection.Session
}

type ISelectionService interface {
	SelectionOpener
	Show(ctx context.Context, visitorId string) *dto.SelectionResponse
	AddProduct(ctx context.Context, visitorId string, req *dto.AddSelectionItemRequest) (*dto.AddSelectionItemResponse, error)
	RemoveProduct(ctx context.Context, visitorId string, productId string) *dto.SelectionResponse
	Clear(ctx context.Context, visitorId string) *dto.SelectionResponse
}

type selectionService struct {
	kv        selection.KeyValueStore
	keyPrefix string
	resolver  SelectionItemResolver
	publisher IPublisherService
	logger    logger.ILogger
}

// NewSelectionService stores each visitor's selection under "<keyPrefix>:<visitorId>".
// publisher may be nil.
func NewSelectionService(
	kv selection.KeyValueStore,
	keyPrefix string,
	resolver SelectionItemResolver,
	publisher IPublisherService,
	log logger.ILogger,
) ISelectionService {
	if keyPrefix == "" {
		keyPrefix = selection.DefaultKey
	}
	return &selectionService{
		kv:        kv,
		keyPrefix: keyPrefix,
		resolver:  resolver,
		publisher: publisher,
		logger:    log,
	}
}

func (s *selectionService) StoreKey(visitorId string) string {
	return s.keyPrefix + ":" + visitorId
}

func (s *selectionService) Open(ctx context.Context, visitorId string) *selection.Session {
	session := selection.NewSession(selection.NewStoreAdapter(s.kv, s.StoreKey(visitorId), s.logger))
	if s.publisher == nil {
		return session
	}

	session.Subscribe(func(c selection.Change) {
		err := s.publisher.PublishSelectionChanged(context.WithoutCancel(ctx), dto.SelectionChangedMessage{
			VisitorId: visitorId,
			Kind:      string(c.Kind),
			ProductId: c.ProductId,
			Count:     c.Count,
		})
		if err != nil {
			s.logger.Warn("Selection", "Failed to publish selection change", map[string]interface{}{
				"visitor_id": visitorId,
				"error":      err.Error(),
			})
		}
	})
	return session
}

func (s *selectionService) Show(ctx context.Context, visitorId string) *dto.SelectionResponse {
	return ToSelectionResponse(s.Open(ctx, visitorId))
}

func (s *selectionService) AddProduct(ctx context.Context, visitorId string, req *dto.AddSelectionItemRequest) (*dto.AddSelectionItemResponse, error) {
	productId, err := uuid.Parse(req.ProductId)
	if err != nil {
		return nil, apperror.NewFieldValidation("product_id", "product_id must be a valid id")
	}

	session := s.Open(ctx, visitorId)
	if session.Contains(productId.String()) {
		return &dto.AddSelectionItemResponse{Added: false, Selection: *ToSelectionResponse(session)}, nil
	}

	item, err := s.resolver.ResolveSelectionItem(ctx, productId)
	if err != nil {
		return nil, err
	}

	added := session.Add(item)
	return &dto.AddSelectionItemResponse{Added: added, Selection: *ToSelectionResponse(session)}, nil
}

// RemoveProduct accepts any spelling of a uuid; items are stored in canonical form.
func (s *selectionService) RemoveProduct(ctx context.Context, visitorId string, productId string) *dto.SelectionResponse {
	if id, err := uuid.Parse(productId); err == nil {
		productId = id.String()
	}

	session := s.Open(ctx, visitorId)
	session.Remove(productId)
	return ToSelectionResponse(session)
}

func (s *selectionService) Clear(ctx context.Context, visitorId string) *dto.SelectionResponse {
	session := s.Open(ctx, visitorId)
	session.Clear()
	return ToSelectionResponse(session)
}

func ToSelectionResponse(session *selection.Session) *dto.SelectionResponse {
	items := session.Items()
	res := &dto.SelectionResponse{
		Items: make([]dto.SelectionItemResponse, 0, len(items)),
		Count: len(items),
		State: session.State().String(),
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.SelectionItemResponse{
			ProductId:     it.ProductId,
			ProductName:   it.ProductName,
			SeriesName:    it.SeriesName,
			SolutionTitle: it.SolutionTitle,
			DocumentUrl:   it.DocumentUrl,
			HasDocument:   it.HasDocument(),
		})
	}
	return res
}
