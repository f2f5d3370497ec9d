package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"caseimport-service/internal/config"
	"caseimport-service/internal/importer/model"
)

// reqLogger binds the request ID (when the middleware set one) into a child
// logger.
func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

// parseImportForm pulls the shared multipart fields for preview and import.
// Writes the error response itself when the form is unusable.
func parseImportForm(w http.ResponseWriter, r *http.Request, cfg config.Config) (multipart.File, *multipart.FileHeader, string, model.Options, bool) {
	if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return nil, nil, "", model.Options{}, false
	}

	userID := strings.TrimSpace(r.FormValue("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user_id")
		return nil, nil, "", model.Options{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return nil, nil, "", model.Options{}, false
	}

	opts := model.Options{
		BatchSize:   atoi(r.FormValue("batch_size"), cfg.BatchSize),
		BatchDelay:  parseDuration(r.FormValue("batch_delay"), cfg.BatchDelay),
		PreviewRows: cfg.PreviewRows,
		HeaderRow:   atoi(r.FormValue("header_row"), 1),
	}
	return file, header, userID, opts, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
