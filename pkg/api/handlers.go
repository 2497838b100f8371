package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hydrotools/fertbase/pkg/table"
)

// APIResponse is the envelope for all JSON responses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// TableInfo summarizes the table header and schema for operators
type TableInfo struct {
	Version      byte   `json:"version"`
	LastModified string `json:"last_modified"`
	RecordCount  int    `json:"record_count"`
	ActiveCount  int    `json:"active_count"`
	DeletedCount int    `json:"deleted_count"`
	HeaderLength uint16 `json:"header_length"`
	RecordLength uint16 `json:"record_length"`
	FieldCount   int    `json:"field_count"`
}

// Server holds the inspection server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new inspection server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleTable reports header stats. The table is loaded fresh on every
// request; the file is small and the server holds no handle between
// requests.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.loadTable()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	deleted := tbl.DeletedCount()
	info := TableInfo{
		Version:      tbl.Header.Version,
		LastModified: tbl.Header.LastModified().Format("2006-01-02"),
		RecordCount:  tbl.RecordCount(),
		ActiveCount:  tbl.RecordCount() - deleted,
		DeletedCount: deleted,
		HeaderLength: tbl.Header.HeaderLength,
		RecordLength: tbl.Header.RecordLength,
		FieldCount:   len(tbl.Fields),
	}
	s.metrics.UpdateTableStats(tbl.RecordCount(), deleted)

	sendSuccess(w, info)
}

func (s *Server) handleSubstances(w http.ResponseWriter, r *http.Request) {
	tbl, err := s.loadTable()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, map[string]interface{}{
		"count":      len(tbl.ActiveNames()),
		"substances": tbl.ActiveNames(),
	})
}

func (s *Server) loadTable() (*table.Table, error) {
	start := time.Now()
	tbl, err := table.Load(s.config.DatabasePath)
	s.metrics.RecordTableLoad(err == nil, time.Since(start))
	return tbl, err
}

// sendSuccess sends a success JSON response
func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   message,
	})
}
