package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"impostor/internal/app"
)

// Handler handles WebSocket connections
type Handler struct {
	hub      *app.TableHub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *app.TableHub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// the device is a single shared screen; any origin may drive it
				return true
			},
		},
		logger: logger,
	}
}

// ServeHTTP handles WebSocket upgrade requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tableCode := strings.ToUpper(r.URL.Query().Get("table"))
	if tableCode == "" {
		h.reject(w, http.StatusBadRequest, ErrCodeInvalidMessage, "table is required")
		return
	}

	table, err := h.hub.GetTable(tableCode)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, app.ErrTableNotFound) {
			status = http.StatusNotFound
		}
		code, message := app.ErrorCode(err)
		h.reject(w, status, code, message)
		return
	}

	// Reuse the device id so the saved roster follows the device
	deviceID := r.URL.Query().Get("device")
	isReturning := true
	if _, err := uuid.Parse(deviceID); err != nil {
		deviceID = uuid.New().String()
		isReturning = false
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(r.Context(), conn, table, deviceID, h.logger)

	h.logger.Info("websocket connected",
		"table", tableCode,
		"device", deviceID,
		"returning", isReturning,
	)

	// connected goes out first, then the current screen
	client.sendConnected()
	table.Attach(r.Context(), deviceID, client)

	client.Run()
}

// reject answers a request that cannot be upgraded
func (h *Handler) reject(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&ErrorPayload{Code: code, Message: message})
}
