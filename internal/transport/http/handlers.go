package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"impostor/internal/app"
	"impostor/internal/domain"
)

// qrSize is the edge length of invite QR codes in pixels
const qrSize = 256

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateTableResponse is the response for table creation
type CreateTableResponse struct {
	TableCode string `json:"tableCode"`
	JoinLink  string `json:"joinLink"`
}

// GetTableResponse is the response for getting table info
type GetTableResponse struct {
	TableCode   string    `json:"tableCode"`
	Phase       string    `json:"phase"`
	PlayerCount int       `json:"playerCount"`
	Variant     string    `json:"variant"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveTables int `json:"activeTables"`
	TotalPlayers int `json:"totalPlayers"`
}

// handleCreateTable handles POST /api/tables
func (s *Server) handleCreateTable(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	table, err := s.hub.CreateTable()
	if err != nil {
		s.logger.Error("failed to create table", "error", err)
		s.sendError(w, http.StatusInternalServerError, "CREATION_FAILED", "Failed to create table")
		return
	}

	s.sendSuccess(w, &CreateTableResponse{
		TableCode: table.GetCode(),
		JoinLink:  s.joinLink(r, table.GetCode()),
	})
}

// handleGetTable handles GET /api/tables/:code
func (s *Server) handleGetTable(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	table, ok := s.lookupTable(w, ps)
	if !ok {
		return
	}

	s.sendSuccess(w, &GetTableResponse{
		TableCode:   table.GetCode(),
		Phase:       string(table.GetPhase()),
		PlayerCount: table.GetPlayerCount(),
		Variant:     string(s.hub.Settings().Variant),
		CreatedAt:   table.GetCreatedAt(),
	})
}

// handleTableQR handles GET /api/tables/:code/qr.png
func (s *Server) handleTableQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	table, ok := s.lookupTable(w, ps)
	if !ok {
		return
	}

	png, err := qrcode.Encode(s.joinLink(r, table.GetCode()), qrcode.Medium, qrSize)
	if err != nil {
		s.logger.Error("qr generation failed", "table", table.GetCode(), "error", err)
		s.sendError(w, http.StatusInternalServerError, app.CodeInternalError, "QR generation failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

// handleCategories handles GET /api/categories
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.sendSuccess(w, domain.Categories())
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.sendSuccess(w, &StatsResponse{
		ActiveTables: s.hub.GetTableCount(),
		TotalPlayers: s.hub.GetTotalPlayerCount(),
	})
}

// handleStatic serves static files
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	path := strings.TrimPrefix(ps.ByName("filepath"), "/")

	file, err := s.webFS.Open("static/" + path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	rs, ok := file.(io.ReadSeeker)
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), rs)
}

// handleIndex handles GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.handleSPA(w, r)
}

// handleSPA serves the single-page application for every other GET route,
// e.g. /join/ABC123
func (s *Server) handleSPA(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api/") {
		s.sendError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
		return
	}

	file, err := s.webFS.Open("index.html")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	rs, ok := file.(io.ReadSeeker)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", stat.ModTime(), rs)
}

// lookupTable resolves the :code parameter, answering 404 when unknown
func (s *Server) lookupTable(w http.ResponseWriter, ps httprouter.Params) (*app.Table, bool) {
	code := strings.ToUpper(ps.ByName("code"))
	if code == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_TABLE_CODE", "Table code is required")
		return nil, false
	}

	table, err := s.hub.GetTable(code)
	if err != nil {
		if errors.Is(err, app.ErrTableNotFound) {
			s.sendError(w, http.StatusNotFound, app.CodeTableNotFound, "Table not found")
		} else {
			s.sendError(w, http.StatusInternalServerError, app.CodeInternalError, "Internal server error")
		}
		return nil, false
	}

	return table, true
}

// joinLink builds the link a device opens to drive a table
func (s *Server) joinLink(r *http.Request, code string) string {
	base := s.config.Server.PublicURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/join/" + code
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
