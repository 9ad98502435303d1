package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockRepo, *echo.Echo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	return h, repo, echo.New()
}

func TestHandler_Register(t *testing.T) {
	h, repo, e := newTestHandler()
	body := `{
		"userId": "` + uuid.New().String() + `",
		"name": "Gabo Gabo da Silva",
		"email": "gabo@example.com",
		"phone": "+5511987654321",
		"birthDate": "1990-05-20T00:00:00Z",
		"gender": "Homem",
		"address": "Rua das Flores, 123",
		"occupation": "Engenheiro",
		"emergencyContactName": "Maria da Silva",
		"emergencyContactNumber": "+5511912345678",
		"primaryPhysician": "Raimundo Neto",
		"insuranceProvider": "Unimed",
		"insurancePolicyNumber": "AB123456",
		"treatmentConsent": true,
		"disclosureConsent": true,
		"privacyConsent": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestHandler_Register_MissingPrivacyConsent(t *testing.T) {
	h, repo, e := newTestHandler()
	body := `{
		"userId": "` + uuid.New().String() + `",
		"name": "Gabo Gabo da Silva",
		"email": "gabo@example.com",
		"phone": "+5511987654321",
		"birthDate": "1990-05-20T00:00:00Z",
		"gender": "Homem",
		"address": "Rua das Flores, 123",
		"occupation": "Engenheiro",
		"emergencyContactName": "Maria da Silva",
		"emergencyContactNumber": "+5511912345678",
		"primaryPhysician": "Raimundo Neto",
		"insuranceProvider": "Unimed",
		"insurancePolicyNumber": "AB123456",
		"treatmentConsent": true,
		"disclosureConsent": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if repo.creates != 0 {
		t.Error("record store written despite validation failure")
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["privacyConsent"] == "" {
		t.Errorf("expected privacyConsent message, got %v", resp.Errors)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}
