package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/assetrack/assetrack/internal/usecase"
)

type stubService struct {
	assets       []usecase.Asset
	vacant       []usecase.Asset
	asset        usecase.Asset
	deleteResult usecase.DeleteAssetResult
	err          error
}

func (s *stubService) Health() map[string]string { return map[string]string{"status": "up"} }
func (s *stubService) Close() error              { return nil }

func (s *stubService) ListAssets(context.Context, usecase.ListAssetsOption) ([]usecase.Asset, int, error) {
	return s.assets, len(s.assets), s.err
}
func (s *stubService) GetAssetByID(context.Context, uuid.UUID) (usecase.Asset, error) {
	return s.asset, s.err
}
func (s *stubService) GetAssetsByOwnerID(context.Context, uuid.UUID) ([]usecase.Asset, error) {
	return s.assets, s.err
}
func (s *stubService) ListVacantAssets(context.Context) ([]usecase.Asset, error) {
	return s.vacant, s.err
}
func (s *stubService) CreateAsset(_ context.Context, a usecase.Asset, _ usecase.OwnerFields) (usecase.Asset, error) {
	return a, s.err
}
func (s *stubService) UpdateAsset(_ context.Context, _ uuid.UUID, a usecase.Asset, _ usecase.OwnerFields) (usecase.Asset, error) {
	return a, s.err
}
func (s *stubService) AssignOwner(context.Context, uuid.UUID, uuid.UUID) (usecase.Asset, error) {
	return s.asset, s.err
}
func (s *stubService) PullOutAsset(context.Context, uuid.UUID) error { return s.err }
func (s *stubService) DeleteAsset(context.Context, uuid.UUID) (usecase.DeleteAssetResult, error) {
	return s.deleteResult, s.err
}
func (s *stubService) GetOwnerByID(context.Context, uuid.UUID) (usecase.Owner, error) {
	return usecase.Owner{}, s.err
}
func (s *stubService) GetTempUploadURL(context.Context, string) (string, error) {
	return "https://files.example.com/temp/upload", s.err
}

func newTestServer(svc Service) *Server {
	return &Server{server: svc, validator: validator.New()}
}

func doRequest(t *testing.T, handler echo.HandlerFunc, req *http.Request, pathParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestListVacantAssetsEmptyReturns404(t *testing.T) {
	s := newTestServer(&stubService{vacant: []usecase.Asset{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/vacant", nil)
	rec := doRequest(t, s.ListVacantAssets, req, nil)

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var res Res
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Message != "no vacant assets available" {
		t.Fatalf("expected empty-vacant message, got %q", res.Message)
	}
}

func TestListVacantAssetsJoinsSSDs(t *testing.T) {
	id := uuid.New()
	s := newTestServer(&stubService{vacant: []usecase.Asset{{
		ID:      id,
		Barcode: "IT-0001",
		Status:  usecase.StatusVacant,
		Components: &usecase.AssetComponents{
			RAM:  "16GB",
			SSDs: []string{"256GB", "512GB"},
		},
	}}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/vacant", nil)
	rec := doRequest(t, s.ListVacantAssets, req, nil)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res struct {
		Data []Asset `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Data) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(res.Data))
	}
	c := res.Data[0].Components
	if c == nil || c.SSD != "256GB, 512GB" || c.RAM != "16GB" {
		t.Fatalf("expected joined component view, got %+v", c)
	}
}

func TestGetAssetByIDRejectsBadID(t *testing.T) {
	s := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/not-a-uuid", nil)
	rec := doRequest(t, s.GetAssetByID, req, map[string]string{"id": "not-a-uuid"})

	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestGetAssetByIDNotFound(t *testing.T) {
	id := uuid.New()
	s := newTestServer(&stubService{err: usecase.ErrNotFound{ID: id, Code: "ASSET_NOT_FOUND", Message: "asset not found"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/"+id.String(), nil)
	rec := doRequest(t, s.GetAssetByID, req, map[string]string{"id": id.String()})

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateAssetRequiresBarcode(t *testing.T) {
	s := newTestServer(&stubService{})

	body := strings.NewReader(`{"brand":"Dell"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(t, s.CreateAsset, req, nil)

	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAssignAssetOwnerValidatesBothIDs(t *testing.T) {
	s := newTestServer(&stubService{})
	id := uuid.New().String()

	body := strings.NewReader(`{"owner_id":"not-a-uuid"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/assets/"+id+"/owner", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := doRequest(t, s.AssignAssetOwner, req, map[string]string{"id": id})

	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestDeleteAssetUsesResultStatusCode(t *testing.T) {
	id := uuid.New().String()

	s := newTestServer(&stubService{deleteResult: usecase.DeleteAssetResult{
		StatusCode: 404, Message: "asset not found",
	}})
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/assets/"+id, nil)
	rec := doRequest(t, s.DeleteAsset, req, map[string]string{"id": id})
	if rec.Code != 404 {
		t.Fatalf("expected 404 passthrough, got %d", rec.Code)
	}

	s = newTestServer(&stubService{deleteResult: usecase.DeleteAssetResult{
		Success: true, StatusCode: 200, Message: "asset deleted successfully",
	}})
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/assets/"+id, nil)
	rec = doRequest(t, s.DeleteAsset, req, map[string]string{"id": id})
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Data["asset_id"] != id {
		t.Fatalf("expected asset_id echoed, got %+v", res.Data)
	}
}

func TestListAssetsDefaultsAndMeta(t *testing.T) {
	s := newTestServer(&stubService{assets: []usecase.Asset{{ID: uuid.New(), Barcode: "IT-0001"}}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil)
	rec := doRequest(t, s.ListAssets, req, nil)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res struct {
		Data []Asset `json:"data"`
		Meta *Meta   `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Meta == nil || res.Meta.Limit != 20 {
		t.Fatalf("expected default limit 20 in meta, got %+v", res.Meta)
	}
	if res.Meta.Total != 1 {
		t.Fatalf("expected total 1, got %d", res.Meta.Total)
	}
}

func TestListAssetsRejectsOversizedLimit(t *testing.T) {
	s := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets?limit=500", nil)
	rec := doRequest(t, s.ListAssets, req, nil)

	if rec.Code != 422 {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
