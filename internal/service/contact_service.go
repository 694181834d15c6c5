package service

import (
	"context"
	"strings"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/pkg/mailer"
	"buildchem-be/internal/repository/unitofwork"
	"buildchem-be/pkg/events"
)

const (
	contactFailedMessage     = "Failed to send message. Please try again later."
	applicationFailedMessage = "Failed to submit application. Please try again later."
)

type IContactService interface {
	SubmitInquiry(ctx context.Context, req *dto.ContactInquiryRequest) (*dto.ContactInquiryResponse, error)
	SubmitApplication(ctx context.Context, req *dto.JobApplicationRequest) error
}

type contactService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	events         events.Publisher
	defaultWebsite string
	logger         logger.ILogger
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher events.Publisher,
	defaultWebsite string,
	log logger.ILogger,
) IContactService {
	if eventPublisher == nil {
		eventPublisher = events.NopPublisher{}
	}
	return &contactService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		events:         eventPublisher,
		defaultWebsite: defaultWebsite,
		logger:         log,
	}
}

// SubmitInquiry stores the inquiry, tells the sales inbox, then sends the
// auto-reply. Every failure surfaces as the same generic message.
func (s *contactService) SubmitInquiry(ctx context.Context, req *dto.ContactInquiryRequest) (*dto.ContactInquiryResponse, error) {
	website := strings.TrimSpace(req.Website)
	if website == "" {
		website = s.defaultWebsite
	}

	inquiry := &entity.Inquiry{
		FullName: strings.TrimSpace(req.FullName),
		Company:  optional(req.Company),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Subject:  strings.TrimSpace(req.Subject),
		Message:  optional(req.Message),
		Website:  website,
		Status:   entity.InquiryStatusNew,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InquiryRepository().Create(ctx, inquiry); err != nil {
		s.logger.Error("Contact", "Failed to store inquiry", map[string]interface{}{"email": inquiry.Email, "error": err.Error()})
		return nil, apperror.NewSubmission("record", contactFailedMessage, err)
	}

	if err := s.emailService.SendInquiryNotice(inquiry); err != nil {
		return nil, s.notifyFailure(inquiry, err)
	}
	if err := s.emailService.SendInquiryAutoReply(inquiry); err != nil {
		return nil, s.notifyFailure(inquiry, err)
	}

	event := events.New(events.InquiryReceived, map[string]interface{}{
		"inquiry_id": inquiry.Id.String(),
		"email":      inquiry.Email,
		"subject":    inquiry.Subject,
		"website":    inquiry.Website,
	})
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("Contact", "Failed to publish event", map[string]interface{}{"inquiry_id": inquiry.Id.String(), "error": err.Error()})
	}

	return &dto.ContactInquiryResponse{Id: inquiry.Id}, nil
}

func (s *contactService) notifyFailure(inquiry *entity.Inquiry, err error) error {
	s.logger.Error("Contact", "Failed to email inquiry", map[string]interface{}{
		"inquiry_id": inquiry.Id.String(),
		"error":      err.Error(),
	})
	subErr := apperror.NewSubmission("notify", contactFailedMessage, err)
	subErr.RecordId = inquiry.Id.String()
	return subErr
}

// SubmitApplication only emails the careers inbox; applications are not stored.
func (s *contactService) SubmitApplication(ctx context.Context, req *dto.JobApplicationRequest) error {
	application := &entity.JobApplication{
		JobId:    strings.TrimSpace(req.JobId),
		JobTitle: strings.TrimSpace(req.JobTitle),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		LinkedIn: strings.TrimSpace(req.LinkedIn),
		Message:  req.Message,
	}

	if err := s.emailService.SendJobApplication(application); err != nil {
		s.logger.Error("Contact", "Failed to email job application", map[string]interface{}{
			"job_title": application.JobTitle,
			"error":     err.Error(),
		})
		return apperror.NewSubmission("notify", applicationFailedMessage, err)
	}

	event := events.New(events.JobApplicationReceived, map[string]interface{}{
		"job_id":    application.JobId,
		"job_title": application.JobTitle,
		"email":     application.Email,
	})
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("Contact", "Failed to publish event", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
