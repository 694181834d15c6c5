package unitofwork

import (
	"context"

	"buildchem-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CatalogRepository() contract.CatalogRepository
	CatalogRequestRepository() contract.CatalogRequestRepository
	InquiryRepository() contract.InquiryRepository
	CareerRepository() contract.CareerRepository
	CompanyRepository() contract.CompanyRepository
}
