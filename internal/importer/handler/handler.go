package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"caseimport-service/internal/config"
	"caseimport-service/internal/importer/model"
	impSvc "caseimport-service/internal/importer/service"
	"caseimport-service/internal/store"
)

// Preview validates the first rows of an upload without writing anything.
// Multipart fields: file, user_id, optional header_row.
func Preview(cfg config.Config, logger zerolog.Logger, st store.RecordStore, aliases config.Aliases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		file, header, userID, opts, ok := parseImportForm(w, r, cfg)
		if !ok {
			return
		}
		defer file.Close()

		imp := impSvc.New(st, aliases, opts, log)
		preview, err := imp.PreviewFile(r.Context(), userID, file, header.Filename)
		if err != nil {
			writeSetupError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, preview)
	}
}

// Import runs the batch import and returns the categorized summary. Setup
// errors are 4xx; row-level outcomes always come back as 200 with counts.
func Import(cfg config.Config, logger zerolog.Logger, st store.RecordStore, aliases config.Aliases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		file, header, userID, opts, ok := parseImportForm(w, r, cfg)
		if !ok {
			return
		}
		defer file.Close()

		imp := impSvc.New(st, aliases, opts, log)
		imp.OnProgress = func(p model.Progress) {
			log.Debug().
				Int("current", p.Current).
				Int("total", p.Total).
				Int("batch", p.CurrentBatch).
				Int("batches", p.TotalBatches).
				Msg("import progress")
		}

		res, err := imp.RunFile(r.Context(), userID, file, header.Filename)
		if err != nil {
			writeSetupError(w, log, err)
			return
		}

		log.Info().
			Int("success", res.SuccessCount).
			Int("failed", res.FailureCount).
			Int("client_not_found", res.ClientNotFoundCount).
			Dur("elapsed", time.Since(start)).
			Msg("import finished")
		writeJSON(w, http.StatusOK, res)
	}
}

// Report turns a posted ImportResult back into a downloadable .xlsx.
func Report(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		var res model.Result
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			writeError(w, http.StatusBadRequest, "bad result payload: "+err.Error())
			return
		}
		rows := impSvc.BuildReport(res)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="import-report.xlsx"`)
		if err := impSvc.WriteReportXLSX(w, rows); err != nil {
			// headers are out already; just log
			log.Error().Err(err).Msg("write report")
		}
	}
}

func writeSetupError(w http.ResponseWriter, log zerolog.Logger, err error) {
	log.Warn().Err(err).Msg("import setup failed")
	status := http.StatusBadRequest
	if errors.Is(err, store.ErrNoFirm) {
		status = http.StatusForbidden
	}
	writeError(w, status, err.Error())
}
