package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/entity"
	"buildchem-be/internal/pkg/apperror"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/pkg/selection"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSelectionService struct {
	visitors []string
	added    bool
}

func (s *stubSelectionService) Open(ctx context.Context, visitorId string) *selection.Session {
	return nil
}

func (s *stubSelectionService) Show(ctx context.Context, visitorId string) *dto.SelectionResponse {
	s.visitors = append(s.visitors, visitorId)
	return &dto.SelectionResponse{Items: []dto.SelectionItemResponse{}, State: "EMPTY"}
}

func (s *stubSelectionService) AddProduct(ctx context.Context, visitorId string, req *dto.AddSelectionItemRequest) (*dto.AddSelectionItemResponse, error) {
	s.visitors = append(s.visitors, visitorId)
	return &dto.AddSelectionItemResponse{Added: s.added, Selection: dto.SelectionResponse{Count: 1}}, nil
}

func (s *stubSelectionService) RemoveProduct(ctx context.Context, visitorId string, productId string) *dto.SelectionResponse {
	return &dto.SelectionResponse{}
}

func (s *stubSelectionService) Clear(ctx context.Context, visitorId string) *dto.SelectionResponse {
	return &dto.SelectionResponse{}
}

type stubCatalogRequestService struct {
	err  error
	reqs []*dto.SubmitCatalogRequest
}

func (s *stubCatalogRequestService) Submit(ctx context.Context, visitorId string, req *dto.SubmitCatalogRequest) (*dto.SubmitCatalogResponse, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SubmitCatalogResponse{RequestId: uuid.New(), ItemCount: 2, SubmittedAt: time.Now()}, nil
}

func (s *stubCatalogRequestService) SubmitSelection(ctx context.Context, session *selection.Session, contact entity.ContactInfo) (*entity.CatalogRequest, error) {
	return nil, nil
}

func newSelectionApp(sel *stubSelectionService, req *stubCatalogRequestService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))
	visitor := serverutils.VisitorMiddleware(serverutils.VisitorConfig{Secret: []byte("k"), CookieName: "v", TTL: time.Hour})
	NewSelectionController(sel, req).RegisterRoutes(app.Group("/api"), visitor)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func TestSelectionController_ShowIssuesVisitor(t *testing.T) {
	sel := &stubSelectionService{}
	app := newSelectionApp(sel, &stubCatalogRequestService{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/selection", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	require.Len(t, sel.visitors, 1)
	_, err := uuid.Parse(sel.visitors[0])
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Cookies())
}

func TestSelectionController_AddItemValidates(t *testing.T) {
	sel := &stubSelectionService{added: true}
	app := newSelectionApp(sel, &stubCatalogRequestService{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/selection/items", `{"product_id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "product_id must be a valid id", body["message"])
	assert.Empty(t, sel.visitors)

	resp, body = doJSON(t, app, http.MethodPost, "/api/selection/items", `{"product_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Added to selection", body["message"])
}

func TestSelectionController_DuplicateAddIsOK(t *testing.T) {
	app := newSelectionApp(&stubSelectionService{added: false}, &stubCatalogRequestService{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/selection/items", `{"product_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Already in selection", body["message"])
}

func TestSelectionController_SubmitMapsErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"ok", nil, http.StatusCreated},
		{"validation", apperror.NewValidation("items required"), http.StatusBadRequest},
		{"submission", apperror.NewSubmission("notify", "Failed to send catalog request. Please try again later.", errors.New("smtp")), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := &stubCatalogRequestService{err: tt.err}
			app := newSelectionApp(&stubSelectionService{}, reqs)

			resp, _ := doJSON(t, app, http.MethodPost, "/api/selection/submit", `{"email":"x@y.com","name":"Jane"}`)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			require.Len(t, reqs.reqs, 1)
			assert.Equal(t, "x@y.com", reqs.reqs[0].Email)
		})
	}
}

type stubContactService struct {
	inquiries int
}

func (s *stubContactService) SubmitInquiry(ctx context.Context, req *dto.ContactInquiryRequest) (*dto.ContactInquiryResponse, error) {
	s.inquiries++
	return &dto.ContactInquiryResponse{Id: uuid.New()}, nil
}

func (s *stubContactService) SubmitApplication(ctx context.Context, req *dto.JobApplicationRequest) error {
	return nil
}

func TestContactController_Validation(t *testing.T) {
	svc := &stubContactService{}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))
	NewContactController(svc).RegisterRoutes(app.Group("/api"))

	resp, body := doJSON(t, app, http.MethodPost, "/api/contact", `{"full_name":"Jane","email":"bad","phone":"1","subject":"s"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid email", body["message"])
	assert.Equal(t, 0, svc.inquiries)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/contact", `{"full_name":"Jane","email":"jane@acme.com","phone":"1","subject":"s"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, svc.inquiries)

	resp, body = doJSON(t, app, http.MethodPost, "/api/contact/apply", `{"name":"Sam","email":"sam@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "job_title is required", body["message"])
}

type stubCareerService struct{}

func (s *stubCareerService) ListOpenJobs(ctx context.Context) ([]*dto.JobOpeningResponse, error) {
	return []*dto.JobOpeningResponse{{Id: uuid.New(), Title: "Site Engineer", Qualifications: []string{}, Status: "Open"}}, nil
}

type stubCompanyService struct {
	known uuid.UUID
	asked []uuid.UUID
}

func (s *stubCompanyService) ListCompanies(ctx context.Context) ([]*dto.CompanyResponse, error) {
	return []*dto.CompanyResponse{{Id: s.known, CompanyName: "Ecoshift"}}, nil
}

func (s *stubCompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	s.asked = append(s.asked, id)
	if id != s.known {
		return nil, apperror.NewNotFound("company", id.String())
	}
	return &dto.CompanyResponse{Id: id, CompanyName: "Ecoshift"}, nil
}

func TestCareerController_List(t *testing.T) {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))
	NewCareerController(&stubCareerService{}).RegisterRoutes(app.Group("/api"))

	resp, body := doJSON(t, app, http.MethodGet, "/api/careers", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Open positions", body["message"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "Site Engineer", data[0].(map[string]interface{})["title"])
}

func TestCompanyController_ListAndShow(t *testing.T) {
	svc := &stubCompanyService{known: uuid.New()}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))
	NewCompanyController(svc).RegisterRoutes(app.Group("/api"))

	resp, body := doJSON(t, app, http.MethodGet, "/api/companies", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"], 1)

	resp, body = doJSON(t, app, http.MethodGet, "/api/companies/"+svc.known.String(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ecoshift", body["data"].(map[string]interface{})["company_name"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/companies/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/companies/not-an-id", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Len(t, svc.asked, 2, "malformed ids never reach the service")
}
