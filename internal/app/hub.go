package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	mrand "math/rand/v2"
	"sync"
	"time"

	"impostor/internal/domain"
)

const (
	// DefaultTableCodeLength is the default length for table codes
	DefaultTableCodeLength = 6

	// StaleTableTimeout is how long an unattended table is kept
	StaleTableTimeout = 2 * time.Hour
)

// TableCodeChars are characters used for table codes (no ambiguous chars)
const TableCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// TableHub manages all open tables
type TableHub struct {
	tables          map[string]*Table
	mu              sync.RWMutex
	tableCodeLength int
	settings        domain.Settings
	roster          RosterStore
	logger          *slog.Logger
	done            chan struct{}
	closeOnce       sync.Once
}

// NewTableHub creates a new table hub
func NewTableHub(settings domain.Settings, roster RosterStore, codeLength int, logger *slog.Logger) *TableHub {
	if codeLength <= 0 {
		codeLength = DefaultTableCodeLength
	}

	hub := &TableHub{
		tables:          make(map[string]*Table),
		tableCodeLength: codeLength,
		settings:        settings,
		roster:          roster,
		logger:          logger,
		done:            make(chan struct{}),
	}

	// Start cleanup goroutine
	go hub.cleanupLoop()

	return hub
}

// Settings returns the rules new tables are created with
func (h *TableHub) Settings() domain.Settings {
	return h.settings
}

// CreateTable creates a new table
func (h *TableHub) CreateTable() (*Table, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Generate unique table code
	var code string
	for attempts := 0; attempts < 10; attempts++ {
		code = h.generateTableCode()
		if _, exists := h.tables[code]; !exists {
			break
		}
	}

	if _, exists := h.tables[code]; exists {
		return nil, fmt.Errorf("failed to generate unique table code")
	}

	rng := mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	game := domain.NewGame(code, h.settings, rng)
	table := NewTable(game, h.roster, h.logger)
	h.tables[code] = table

	h.logger.Info("table created", "table", code, "variant", h.settings.Variant)

	return table, nil
}

// GetTable returns a table by code
func (h *TableHub) GetTable(code string) (*Table, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	table, ok := h.tables[code]
	if !ok {
		return nil, ErrTableNotFound
	}

	return table, nil
}

// DeleteTable removes a table
func (h *TableHub) DeleteTable(code string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if table, ok := h.tables[code]; ok {
		table.Close()
		delete(h.tables, code)
		h.logger.Info("table deleted", "table", code)
	}
}

// GetTableCount returns the number of open tables
func (h *TableHub) GetTableCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.tables)
}

// GetTotalPlayerCount returns the number of seats across all tables
func (h *TableHub) GetTotalPlayerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, table := range h.tables {
		total += table.GetPlayerCount()
	}
	return total
}

// Close shuts down the hub and all tables
func (h *TableHub) Close() {
	h.closeOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, table := range h.tables {
		table.Close()
	}
	h.tables = make(map[string]*Table)
}

// generateTableCode generates a random table code
func (h *TableHub) generateTableCode() string {
	b := make([]byte, h.tableCodeLength)
	rand.Read(b)

	code := make([]byte, h.tableCodeLength)
	for i := range code {
		code[i] = TableCodeChars[int(b[i])%len(TableCodeChars)]
	}

	return string(code)
}

// cleanupLoop periodically cleans up stale tables
func (h *TableHub) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.cleanupStaleTables(time.Now())
		}
	}
}

// cleanupStaleTables removes unattended tables idle for too long
func (h *TableHub) cleanupStaleTables(now time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	stale := make([]string, 0)
	for code, table := range h.tables {
		if !table.IsAttached() && now.Sub(table.GetLastActive()) > StaleTableTimeout {
			stale = append(stale, code)
		}
	}

	for _, code := range stale {
		if table, ok := h.tables[code]; ok {
			table.Close()
			delete(h.tables, code)
			h.logger.Info("stale table cleaned up", "table", code)
		}
	}

	return len(stale)
}
