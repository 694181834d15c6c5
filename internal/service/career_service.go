package service

import (
	"context"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/specification"
	"buildchem-be/internal/repository/unitofwork"
)

type ICareerService interface {
	// ListOpenJobs returns open positions, newest first.
	ListOpenJobs(ctx context.Context) ([]*dto.JobOpeningResponse, error)
}

type careerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCareerService(uowFactory unitofwork.RepositoryFactory) ICareerService {
	return &careerService{uowFactory: uowFactory}
}

func (s *careerService) ListOpenJobs(ctx context.Context) ([]*dto.JobOpeningResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.CareerRepository().FindAll(ctx,
		specification.ByStatus{Status: entity.JobStatusOpen},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.JobOpeningResponse, 0, len(jobs))
	for _, job := range jobs {
		res = append(res, toJobOpeningResponse(job))
	}
	return res, nil
}

func toJobOpeningResponse(job *entity.JobOpening) *dto.JobOpeningResponse {
	return &dto.JobOpeningResponse{
		Id:             job.Id,
		Title:          job.Title,
		Category:       job.Category,
		JobType:        job.JobType,
		Location:       job.Location,
		Qualifications: job.Qualifications,
		Status:         job.Status,
		CreatedAt:      job.CreatedAt,
	}
}

func toJobOpeningEntity(seed dto.JobSeed) *entity.JobOpening {
	status := seed.Status
	if status == "" {
		status = entity.JobStatusOpen
	}
	return &entity.JobOpening{
		Title:          seed.Title,
		Category:       seed.Category,
		JobType:        seed.JobType,
		Location:       seed.Location,
		Qualifications: seed.Qualifications,
		Status:         status,
	}
}
