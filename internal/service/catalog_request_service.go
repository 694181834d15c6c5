package service

import (
	"context"
	"strings"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/repository/unitofwork"
	"buildchem-be/pkg/assetlink"
	"buildchem-be/pkg/events"
	"buildchem-be/pkg/selection"
)

const catalogRequestFailedMessage = "Failed to send catalog request. Please try again later."

// CatalogRequestNotifier delivers a stored request to the visitor and the sales team.
type CatalogRequestNotifier interface {
	NotifyCatalogRequest(ctx context.Context, batch *entity.CatalogRequestBatch) error
}

type ICatalogRequestService interface {
	Submit(ctx context.Context, visitorId string, req *dto.SubmitCatalogRequest) (*dto.SubmitCatalogResponse, error)
	SubmitSelection(ctx context.Context, session *selection.Session, contact entity.ContactInfo) (*entity.CatalogRequest, error)
}

type catalogRequestService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   SelectionOpener
	normalizer *assetlink.Normalizer
	notifier   CatalogRequestNotifier
	events     events.Publisher
	logger     logger.ILogger
}

func NewCatalogRequestService(
	uowFactory unitofwork.RepositoryFactory,
	sessions SelectionOpener,
	normalizer *assetlink.Normalizer,
	notifier CatalogRequestNotifier,
	eventPublisher events.Publisher,
	log logger.ILogger,
) ICatalogRequestService {
	if eventPublisher == nil {
		eventPublisher = events.NopPublisher{}
	}
	return &catalogRequestService{
		uowFactory: uowFactory,
		sessions:   sessions,
		normalizer: normalizer,
		notifier:   notifier,
		events:     eventPublisher,
		logger:     log,
	}
}

func (s *catalogRequestService) Submit(ctx context.Context, visitorId string, req *dto.SubmitCatalogRequest) (*dto.SubmitCatalogResponse, error) {
	session := s.sessions.Open(ctx, visitorId)
	request, err := s.SubmitSelection(ctx, session, entity.ContactInfo{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SubmitCatalogResponse{
		RequestId:   request.Id,
		ItemCount:   len(request.Items),
		SubmittedAt: request.RequestedAt,
	}, nil
}

// SubmitSelection records the session's items, notifies, then clears the session.
// A recording failure skips notification; a notification failure keeps the
// record and the session. Either way the caller gets a SubmissionError.
func (s *catalogRequestService) SubmitSelection(ctx context.Context, session *selection.Session, contact entity.ContactInfo) (*entity.CatalogRequest, error) {
	items := session.Items()
	if len(items) == 0 {
		return nil, apperror.NewFieldValidation("items", "items required")
	}

	contact.Email = strings.TrimSpace(contact.Email)
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Company = strings.TrimSpace(contact.Company)
	if !entity.IsValidEmail(contact.Email) {
		return nil, apperror.NewFieldValidation("email", "invalid email")
	}

	request := &entity.CatalogRequest{
		Contact: contact,
		Items:   s.normalizer.NormalizeItems(items),
		Source:  entity.CatalogRequestSource,
		Status:  entity.CatalogRequestStatusNew,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CatalogRequestRepository().Create(ctx, request); err != nil {
		s.logger.Error("CatalogRequest", "Failed to record catalog request", map[string]interface{}{
			"email": contact.Email,
			"items": len(items),
			"error": err.Error(),
		})
		return nil, apperror.NewSubmission("record", catalogRequestFailedMessage, err)
	}

	batch := &entity.CatalogRequestBatch{
		RequestId: request.Id,
		Contact:   request.Contact,
		Items:     entity.CloneSelectionItems(request.Items),
	}
	if err := s.notifier.NotifyCatalogRequest(ctx, batch); err != nil {
		s.logger.Error("CatalogRequest", "Failed to notify catalog request", map[string]interface{}{
			"request_id": request.Id.String(),
			"email":      contact.Email,
			"error":      err.Error(),
		})
		subErr := apperror.NewSubmission("notify", catalogRequestFailedMessage, err)
		subErr.RecordId = request.Id.String()
		return nil, subErr
	}

	session.Clear()

	s.publish(ctx, request)
	s.logger.Info("CatalogRequest", "Catalog request submitted", map[string]interface{}{
		"request_id": request.Id.String(),
		"items":      len(request.Items),
	})
	return request, nil
}

func (s *catalogRequestService) publish(ctx context.Context, request *entity.CatalogRequest) {
	productIds := make([]string, 0, len(request.Items))
	for _, it := range request.Items {
		productIds = append(productIds, it.ProductId)
	}

	event := events.New(events.CatalogRequestSubmitted, map[string]interface{}{
		"request_id":  request.Id.String(),
		"email":       request.Contact.Email,
		"name":        request.Contact.Name,
		"company":     request.Contact.Company,
		"product_ids": productIds,
	})
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("CatalogRequest", "Failed to publish event", map[string]interface{}{
			"request_id": request.Id.String(),
			"error":      err.Error(),
		})
	}
}
