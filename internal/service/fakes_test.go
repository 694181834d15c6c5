package service

import (
	"context"
	"sync"
	"time"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/repository/contract"
	"buildchem-be/internal/repository/specification"
	"buildchem-be/internal/repository/unitofwork"
	"buildchem-be/pkg/events"

	"github.com/google/uuid"
)

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: &fakeUow{
		catalog:   &fakeCatalogRepo{},
		requests:  &fakeCatalogRequestRepo{},
		inquiry:   &fakeInquiryRepo{},
		careers:   &fakeCareerRepo{},
		companies: &fakeCompanyRepo{},
	}}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	catalog   *fakeCatalogRepo
	requests  *fakeCatalogRequestRepo
	inquiry   *fakeInquiryRepo
	careers   *fakeCareerRepo
	companies *fakeCompanyRepo
	began     int
	committed int
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.began++
	return nil
}

func (u *fakeUow) Commit() error {
	u.committed++
	return nil
}

func (u *fakeUow) Rollback() error { return nil }

func (u *fakeUow) CatalogRepository() contract.CatalogRepository               { return u.catalog }
func (u *fakeUow) CatalogRequestRepository() contract.CatalogRequestRepository { return u.requests }
func (u *fakeUow) InquiryRepository() contract.InquiryRepository               { return u.inquiry }
func (u *fakeUow) CareerRepository() contract.CareerRepository                 { return u.careers }
func (u *fakeUow) CompanyRepository() contract.CompanyRepository               { return u.companies }

type fakeCareerRepo struct {
	jobs  []*entity.JobOpening
	specs []specification.Specification
	wiped bool
}

func (r *fakeCareerRepo) Create(ctx context.Context, job *entity.JobOpening) error {
	job.Id = uuid.New()
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *fakeCareerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobOpening, error) {
	r.specs = specs
	return r.jobs, nil
}

func (r *fakeCareerRepo) DeleteAll(ctx context.Context) error {
	r.wiped = true
	r.jobs = nil
	return nil
}

type fakeCompanyRepo struct {
	companies []*entity.Company
	specs     []specification.Specification
	wiped     bool
}

func (r *fakeCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	c.Id = uuid.New()
	r.companies = append(r.companies, c)
	return nil
}

func (r *fakeCompanyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error) {
	r.specs = specs
	return r.companies, nil
}

func (r *fakeCompanyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error) {
	r.specs = specs
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, c := range r.companies {
				if c.Id == byId.ID {
					return c, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) DeleteAll(ctx context.Context) error {
	r.wiped = true
	r.companies = nil
	return nil
}

type fakeCatalogRepo struct {
	solutions []*entity.Solution
	products  map[uuid.UUID]*entity.CatalogProduct
	findErr   error
	wiped     bool
}

func (r *fakeCatalogRepo) CreateSolution(ctx context.Context, s *entity.Solution) error {
	s.Id = uuid.New()
	r.solutions = append(r.solutions, s)
	return nil
}

func (r *fakeCatalogRepo) FindAllSolutions(ctx context.Context, specs ...specification.Specification) ([]*entity.Solution, error) {
	return r.solutions, r.findErr
}

func (r *fakeCatalogRepo) FindSolution(ctx context.Context, specs ...specification.Specification) (*entity.Solution, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, s := range r.solutions {
				if s.Id == byId.ID {
					return s, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) FindProduct(ctx context.Context, id uuid.UUID) (*entity.CatalogProduct, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.products[id], nil
}

func (r *fakeCatalogRepo) CountSolutions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.solutions)), nil
}

func (r *fakeCatalogRepo) DeleteAllUnscoped(ctx context.Context) error {
	r.wiped = true
	r.solutions = nil
	return nil
}

type fakeCatalogRequestRepo struct {
	created   []entity.CatalogRequest
	createErr error
	calls     int
}

func (r *fakeCatalogRequestRepo) Create(ctx context.Context, req *entity.CatalogRequest) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	req.Id = uuid.New()
	req.RequestedAt = time.Now()
	if req.Status == "" {
		req.Status = entity.CatalogRequestStatusNew
	}
	stored := *req
	stored.Items = entity.CloneSelectionItems(req.Items)
	r.created = append(r.created, stored)
	return nil
}

func (r *fakeCatalogRequestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CatalogRequest, error) {
	return nil, nil
}

func (r *fakeCatalogRequestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CatalogRequest, error) {
	return nil, nil
}

func (r *fakeCatalogRequestRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *fakeCatalogRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CatalogRequestStatus) error {
	return nil
}

type fakeInquiryRepo struct {
	created   []entity.Inquiry
	createErr error
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inq *entity.Inquiry) error {
	if r.createErr != nil {
		return r.createErr
	}
	inq.Id = uuid.New()
	r.created = append(r.created, *inq)
	return nil
}

func (r *fakeInquiryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Inquiry, error) {
	return nil, nil
}

func (r *fakeInquiryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeNotifier struct {
	batches []*entity.CatalogRequestBatch
	err     error
}

func (n *fakeNotifier) NotifyCatalogRequest(ctx context.Context, batch *entity.CatalogRequestBatch) error {
	n.batches = append(n.batches, batch)
	return n.err
}

type fakeMail struct {
	notices     int
	autoReplies int
	jobs        int
	noticeErr   error
	replyErr    error
	jobErr      error
}

func (m *fakeMail) SendCatalogConfirmation(*entity.CatalogRequestBatch) error { return nil }
func (m *fakeMail) SendCatalogAdminNotice(*entity.CatalogRequestBatch) error  { return nil }

func (m *fakeMail) SendInquiryNotice(*entity.Inquiry) error {
	m.notices++
	return m.noticeErr
}

func (m *fakeMail) SendInquiryAutoReply(*entity.Inquiry) error {
	m.autoReplies++
	return m.replyErr
}

func (m *fakeMail) SendJobApplication(*entity.JobApplication) error {
	m.jobs++
	return m.jobErr
}

type recordingEvents struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (r *recordingEvents) Publish(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recordingEvents) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []dto.SelectionChangedMessage
}

func (p *recordingPublisher) PublishSelectionChanged(ctx context.Context, msg dto.SelectionChangedMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}
