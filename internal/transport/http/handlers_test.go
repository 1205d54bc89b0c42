package http

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"impostor/internal/app"
	"impostor/internal/config"
	"impostor/internal/domain"
	"impostor/internal/store"
)

func newTestServer(t *testing.T) (*Server, *app.TableHub) {
	t.Helper()

	cfg, err := config.Load(config.NewViper(), "", "")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := app.NewTableHub(cfg.Settings(), store.NewMemoryRosterStore(), 0, logger)
	t.Cleanup(hub.Close)

	web := fstest.MapFS{
		"web/index.html":     {Data: []byte("<html>impostor</html>")},
		"web/static/app.js":  {Data: []byte("console.log('hi')")},
		"web/static/app.css": {Data: []byte("body{}")},
	}
	return NewServer(cfg, hub, logger, web), hub
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) Response {
	t.Helper()
	resp := Response{Data: data}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateAndGetTable(t *testing.T) {
	s, hub := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/tables")
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created CreateTableResponse
	if resp := decode(t, rec, &created); !resp.Success {
		t.Fatalf("create failed: %+v", resp.Error)
	}
	if !strings.HasSuffix(created.JoinLink, "/join/"+created.TableCode) {
		t.Fatalf("join link = %s", created.JoinLink)
	}
	if hub.GetTableCount() != 1 {
		t.Fatalf("table count = %d", hub.GetTableCount())
	}

	rec = do(t, s, http.MethodGet, "/api/tables/"+strings.ToLower(created.TableCode))
	var got GetTableResponse
	decode(t, rec, &got)
	if got.TableCode != created.TableCode || got.Phase != string(domain.PhaseSetup) {
		t.Fatalf("get = %+v", got)
	}
	if got.Variant != string(domain.VariantPositional) {
		t.Fatalf("variant = %s", got.Variant)
	}
	if table, _ := hub.GetTable(created.TableCode); !got.CreatedAt.Equal(table.GetCreatedAt()) {
		t.Fatalf("createdAt = %v, want %v", got.CreatedAt, table.GetCreatedAt())
	}

	rec = do(t, s, http.MethodGet, "/api/tables/ZZZZZZ")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown table status = %d", rec.Code)
	}
	if resp := decode(t, rec, nil); resp.Error == nil || resp.Error.Code != app.CodeTableNotFound {
		t.Fatalf("unknown table error = %+v", resp.Error)
	}
}

func TestTableQR(t *testing.T) {
	s, hub := newTestServer(t)
	table, _ := hub.CreateTable()

	rec := do(t, s, http.MethodGet, "/api/tables/"+table.GetCode()+"/qr.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %s", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("not a png: %v", err)
	}
	if img.Bounds().Dx() != qrSize {
		t.Fatalf("width = %d", img.Bounds().Dx())
	}

	if rec := do(t, s, http.MethodGet, "/api/tables/ZZZZZZ/qr.png"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown table status = %d", rec.Code)
	}
}

func TestCategories(t *testing.T) {
	s, _ := newTestServer(t)

	var categories []domain.CategoryInfo
	decode(t, do(t, s, http.MethodGet, "/api/categories"), &categories)

	if len(categories) != len(domain.Categories()) {
		t.Fatalf("got %d categories", len(categories))
	}
	if categories[0].Key != domain.CategoryFruits || categories[0].Icon == "" {
		t.Fatalf("first category = %+v", categories[0])
	}
}

func TestHealthAndStats(t *testing.T) {
	s, hub := newTestServer(t)
	table, _ := hub.CreateTable()
	table.ChoosePlayerCount(4)

	var health HealthResponse
	decode(t, do(t, s, http.MethodGet, "/api/health"), &health)
	if health.Status != "ok" {
		t.Fatalf("health = %+v", health)
	}

	var stats StatsResponse
	decode(t, do(t, s, http.MethodGet, "/api/stats"), &stats)
	if stats.ActiveTables != 1 || stats.TotalPlayers != 4 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestStaticAndSPA(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "impostor"},
		{"/join/ABC123", http.StatusOK, "impostor"},
		{"/static/app.js", http.StatusOK, "console.log"},
		{"/static/missing.js", http.StatusNotFound, ""},
		{"/api/nope", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.path)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("body = %q", rec.Body.String())
			}
		})
	}
}

func TestPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodOptions, "/api/tables")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}
