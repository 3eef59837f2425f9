package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	docio "github.com/archigen/archigen/pkg/io"
	"github.com/archigen/archigen/pkg/pipeline"
)

func testHandler() http.Handler {
	return New(pipeline.NewRunner(nil, nil, nil), nil).Handler()
}

func requestBody(t *testing.T, req DiagramRequest) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func validRequest() DiagramRequest {
	return DiagramRequest{
		Document: docio.Document{
			Title: "Claims",
			Elements: []docio.Element{
				{ID: "handler", Name: "Claims Handler", ElementType: "Business_Role", Layer: "Business"},
				{ID: "claims", Name: "Claims App", ElementType: "Application_Component", Layer: "Application"},
			},
			Relationships: []docio.Relationship{
				{ID: "r1", FromElement: "claims", ToElement: "handler", RelationshipType: "Serving"},
			},
		},
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDiagramEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/diagram", requestBody(t, validRequest())))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		DiagramHash string `json:"diagram_hash"`
		Text        string `json:"text"`
		Stats       struct {
			ElementCount int `json:"element_count"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Text, "@startuml") {
		t.Errorf("text prefix = %.30s", resp.Text)
	}
	if resp.Stats.ElementCount != 2 {
		t.Errorf("element_count = %d", resp.Stats.ElementCount)
	}
	if resp.DiagramHash == "" {
		t.Error("diagram_hash missing")
	}
}

func TestDiagramEndpointMalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/diagram", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDiagramEndpointDanglingRelationship(t *testing.T) {
	req := validRequest()
	req.Relationships[0].ToElement = "ghost"

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/diagram", requestBody(t, req)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "DANGLING_REFERENCE") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestExportEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/export", requestBody(t, validRequest())))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("content type = %s", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), `<?xml`) {
		t.Errorf("body prefix = %.40s", rec.Body.String())
	}
}

func TestValidateEndpoint(t *testing.T) {
	req := validRequest()
	req.Elements[0].ElementType = ""

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/validate", requestBody(t, req)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Valid  bool     `json:"valid"`
		Issues []string `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Valid {
		t.Error("empty element type should be flagged")
	}
	if len(resp.Issues) == 0 {
		t.Error("issues list empty")
	}
}
