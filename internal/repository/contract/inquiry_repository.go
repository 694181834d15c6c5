package contract

import (
	"context"

	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/specification"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Inquiry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
