package service

import (
	"context"
	"fmt"
	"strings"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/repository/specification"
	"buildchem-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICatalogService interface {
	SelectionItemResolver
	ListSolutions(ctx context.Context) ([]*dto.SolutionResponse, error)
	GetSolution(ctx context.Context, id uuid.UUID) (*dto.SolutionResponse, error)
	SeedCatalog(ctx context.Context, seed *dto.CatalogSeed, replace bool) (*dto.SeedCatalogResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *catalogService) ListSolutions(ctx context.Context) ([]*dto.SolutionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	solutions, err := uow.CatalogRepository().FindAllSolutions(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SolutionResponse, 0, len(solutions))
	for _, sol := range solutions {
		res = append(res, toSolutionResponse(sol))
	}
	return res, nil
}

func (s *catalogService) GetSolution(ctx context.Context, id uuid.UUID) (*dto.SolutionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sol, err := uow.CatalogRepository().FindSolution(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, apperror.NewNotFound("solution", id.String())
	}
	return toSolutionResponse(sol), nil
}

func (s *catalogService) ResolveSelectionItem(ctx context.Context, productId uuid.UUID) (entity.SelectionItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.CatalogRepository().FindProduct(ctx, productId)
	if err != nil {
		return entity.SelectionItem{}, err
	}
	if product == nil {
		return entity.SelectionItem{}, apperror.NewNotFound("product", productId.String())
	}
	return product.ToSelectionItem(), nil
}

// SeedCatalog inserts the seed in one transaction. With replace, each section
// present in the seed is wiped first; omitted sections are left alone.
func (s *catalogService) SeedCatalog(ctx context.Context, seed *dto.CatalogSeed, replace bool) (*dto.SeedCatalogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	res := &dto.SeedCatalogResponse{}
	if err := s.seedSolutions(ctx, uow, seed.Solutions, replace, res); err != nil {
		return nil, err
	}
	if err := s.seedCareers(ctx, uow, seed.Careers, replace, res); err != nil {
		return nil, err
	}
	if err := s.seedCompanies(ctx, uow, seed.Companies, replace, res); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("Catalog", "Catalog seeded", map[string]interface{}{
		"solutions": res.Solutions,
		"series":    res.Series,
		"products":  res.Products,
		"jobs":      res.Jobs,
		"companies": res.Companies,
		"replace":   replace,
	})
	return res, nil
}

func (s *catalogService) seedSolutions(ctx context.Context, uow unitofwork.UnitOfWork, seeds []dto.SolutionSeed, replace bool, res *dto.SeedCatalogResponse) error {
	if len(seeds) == 0 {
		return nil
	}
	repo := uow.CatalogRepository()
	if replace {
		if err := repo.DeleteAllUnscoped(ctx); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	for i, sol := range seeds {
		solution := toSolutionEntity(sol, i)
		if err := repo.CreateSolution(ctx, solution); err != nil {
			return fmt.Errorf("create solution %q: %w", sol.Title, err)
		}
		res.Solutions++
		for _, series := range solution.Series {
			res.Series++
			res.Products += len(series.Products)
		}
	}
	return nil
}

func (s *catalogService) seedCareers(ctx context.Context, uow unitofwork.UnitOfWork, seeds []dto.JobSeed, replace bool, res *dto.SeedCatalogResponse) error {
	if len(seeds) == 0 {
		return nil
	}
	repo := uow.CareerRepository()
	if replace {
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear careers: %w", err)
		}
	}

	for _, job := range seeds {
		if err := repo.Create(ctx, toJobOpeningEntity(job)); err != nil {
			return fmt.Errorf("create job %q: %w", job.Title, err)
		}
		res.Jobs++
	}
	return nil
}

func (s *catalogService) seedCompanies(ctx context.Context, uow unitofwork.UnitOfWork, seeds []dto.CompanySeed, replace bool, res *dto.SeedCatalogResponse) error {
	if len(seeds) == 0 {
		return nil
	}
	repo := uow.CompanyRepository()
	if replace {
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear companies: %w", err)
		}
	}

	for _, company := range seeds {
		if err := repo.Create(ctx, toCompanyEntity(company)); err != nil {
			return fmt.Errorf("create company %q: %w", company.CompanyName, err)
		}
		res.Companies++
	}
	return nil
}

func toSolutionEntity(seed dto.SolutionSeed, position int) *entity.Solution {
	index := seed.Index
	if index <= 0 {
		index = position + 1
	}

	var mainImage *string
	if img := strings.TrimSpace(seed.MainImage); img != "" {
		mainImage = &img
	}

	solution := &entity.Solution{
		Index:       index,
		Title:       seed.Title,
		Description: seed.Description,
		MainImage:   mainImage,
	}
	for _, sr := range seed.Series {
		series := &entity.Series{Name: sr.Name}
		for _, p := range sr.Products {
			series.Products = append(series.Products, &entity.Product{Name: p.Name, PdfUrl: p.PdfUrl})
		}
		solution.Series = append(solution.Series, series)
	}
	return solution
}

func toSolutionResponse(sol *entity.Solution) *dto.SolutionResponse {
	res := &dto.SolutionResponse{
		Id:          sol.Id,
		Index:       sol.Index,
		Title:       sol.Title,
		Description: sol.Description,
		MainImage:   sol.MainImage,
		Series:      make([]dto.SeriesResponse, 0, len(sol.Series)),
	}
	for _, series := range sol.Series {
		sr := dto.SeriesResponse{
			Id:       series.Id,
			Name:     series.Name,
			Products: make([]dto.ProductResponse, 0, len(series.Products)),
		}
		for _, p := range series.Products {
			sr.Products = append(sr.Products, dto.ProductResponse{
				Id:     p.Id,
				Name:   p.Name,
				PdfUrl: p.PdfUrl,
				HasPdf: p.PdfUrl != "",
			})
		}
		res.Series = append(res.Series, sr)
	}
	return res
}
