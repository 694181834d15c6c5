package service

import (
	"context"
	"strings"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/repository/specification"
	"buildchem-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICompanyService interface {
	ListCompanies(ctx context.Context) ([]*dto.CompanyResponse, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error)
}

type companyService struct {
	uowFactory unitofwork.RepositoryFactory
	website    string
	logger     logger.ILogger
}

// NewCompanyService scopes every lookup to website. An empty website lists
// all companies.
func NewCompanyService(uowFactory unitofwork.RepositoryFactory, website string, log logger.ILogger) ICompanyService {
	return &companyService{
		uowFactory: uowFactory,
		website:    website,
		logger:     log,
	}
}

func (s *companyService) scope() []specification.Specification {
	if s.website == "" {
		return nil
	}
	return []specification.Specification{specification.ByWebsite{Website: s.website}}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := append(s.scope(), specification.OrderBy{Field: "company_name"})
	companies, err := uow.CompanyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		res = append(res, toCompanyResponse(c))
	}
	return res, nil
}

func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := append(s.scope(), specification.ByID{ID: id})
	company, err := uow.CompanyRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if company == nil {
		s.logger.Debug("Company", "Company not listed on this site", map[string]interface{}{
			"id":      id.String(),
			"website": s.website,
		})
		return nil, apperror.NewNotFound("company", id.String())
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Id:             c.Id,
		CompanyName:    c.CompanyName,
		Description:    c.Description,
		MainImage:      c.MainImage,
		Services:       c.Services,
		KeyFeatures:    c.KeyFeatures,
		PartnersImages: c.PartnersImages,
		Website:        c.Website,
	}
}

func toCompanyEntity(seed dto.CompanySeed) *entity.Company {
	var mainImage *string
	if img := strings.TrimSpace(seed.MainImage); img != "" {
		mainImage = &img
	}
	return &entity.Company{
		CompanyName:    seed.CompanyName,
		Description:    seed.Description,
		MainImage:      mainImage,
		Services:       seed.Services,
		KeyFeatures:    seed.KeyFeatures,
		PartnersImages: seed.PartnersImages,
		Website:        seed.Website,
	}
}
