package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buildchem-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"jane@acme.com", true},
		{"j.doe+tag@sub.acme.co", true},
		{" jane@acme.com ", true},
		{"", false},
		{"jane", false},
		{"jane@acme", false},
		{"jane @acme.com", false},
		{"@acme.com", false},
		{"jane@@acme.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEmail(tt.in), tt.in)
	}
}

type sampleRequest struct {
	Name  string `json:"full_name" validate:"required"`
	Email string `json:"email" validate:"required,site_email"`
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, ValidateRequest(sampleRequest{Name: "Jane", Email: "jane@acme.com"}))

	err := ValidateRequest(sampleRequest{Email: "jane@acme.com"})
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "full_name", verr.Field)
	assert.Equal(t, "full_name is required", verr.Message)

	err = ValidateRequest(sampleRequest{Name: "Jane", Email: "nope"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "invalid email", verr.Message)
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", apperror.NewValidation("items required"), 400, "items required"},
		{"not found", apperror.NewNotFound("product", "42"), 404, "product 42 not found"},
		{"submission", apperror.NewSubmission("notify", "Failed to send catalog request", errors.New("smtp down")), 502, "Failed to send catalog request"},
		{"fiber", fiber.NewError(fiber.StatusUpgradeRequired, "Upgrade Required"), 426, "Upgrade Required"},
		{"unknown", errors.New("pq: connection reset"), 500, internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware(nil))
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body ErrorBody
			raw, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.NotContains(t, string(raw), "smtp down")
		})
	}
}

func testVisitorConfig() VisitorConfig {
	return VisitorConfig{Secret: []byte("test-secret"), CookieName: "bc_visitor", TTL: time.Hour}
}

func visitorApp(cfg VisitorConfig) *fiber.App {
	app := fiber.New()
	app.Use(VisitorMiddleware(cfg))
	app.Get("/", func(ctx *fiber.Ctx) error { return ctx.SendString(VisitorId(ctx)) })
	return app
}

func TestVisitorMiddleware_IssuesAndReusesCookie(t *testing.T) {
	cfg := testVisitorConfig()
	app := visitorApp(cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	firstId, _ := io.ReadAll(resp.Body)
	require.NotEmpty(t, firstId)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == cfg.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	secondId, _ := io.ReadAll(resp.Body)
	assert.Equal(t, string(firstId), string(secondId))
	assert.Empty(t, resp.Cookies())
}

func TestVisitorMiddleware_RejectsForeignSignature(t *testing.T) {
	cfg := testVisitorConfig()
	forged, err := IssueVisitorToken(VisitorConfig{Secret: []byte("other"), TTL: time.Hour}, "6f1c3f4e-2a43-4c1c-9d59-1c1a4b9b1a11", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: forged})
	resp, err := visitorApp(cfg).Test(req)
	require.NoError(t, err)

	id, _ := io.ReadAll(resp.Body)
	assert.NotEqual(t, "6f1c3f4e-2a43-4c1c-9d59-1c1a4b9b1a11", string(id))
	assert.NotEmpty(t, resp.Cookies())
}

func TestParseVisitorToken_Expired(t *testing.T) {
	cfg := testVisitorConfig()
	token, err := IssueVisitorToken(cfg, "6f1c3f4e-2a43-4c1c-9d59-1c1a4b9b1a11", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ParseVisitorToken(cfg, token)
	assert.Error(t, err)
}
