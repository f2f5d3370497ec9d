package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"caseimport-service/internal/config"
	"caseimport-service/internal/fileio"
	"caseimport-service/internal/importer/model"
	"caseimport-service/internal/store"
)

// Importer drives one upload end to end: resolve the firm, build the client
// lookup once, then validate/transform/persist row by row in fixed-size
// batches with a pause between batches.
type Importer struct {
	store    store.RecordStore
	aliases  config.Aliases
	opts     model.Options
	log      zerolog.Logger
	throttle Throttler

	// OnProgress, when set, is called after every settled batch.
	OnProgress func(model.Progress)
}

func New(st store.RecordStore, aliases config.Aliases, opts model.Options, log zerolog.Logger) *Importer {
	opts = opts.WithDefaults()
	return &Importer{
		store:    st,
		aliases:  aliases,
		opts:     opts,
		log:      log,
		throttle: FixedDelay{Delay: opts.BatchDelay},
	}
}

// SetThrottler swaps the inter-batch pacing strategy.
func (imp *Importer) SetThrottler(t Throttler) {
	if t != nil {
		imp.throttle = t
	}
}

// RunFile parses the upload and runs the import over its rows.
func (imp *Importer) RunFile(ctx context.Context, userID string, r io.Reader, filename string) (model.Result, error) {
	rows, err := fileio.ReadAnyMaps(r, filename, imp.opts.HeaderRow)
	if err != nil {
		return model.Result{State: model.StateFailed}, fmt.Errorf("read %s: %w", filename, err)
	}
	return imp.Run(ctx, userID, rows)
}

// Run imports the given rows for userID's firm. Setup errors (no firm, no
// rows) fail the whole run before anything is written; every later failure
// is local to its row. On context cancellation the partial result is
// returned with state "cancelled" rather than discarded.
func (imp *Importer) Run(ctx context.Context, userID string, rows []map[string]string) (model.Result, error) {
	res := model.Result{
		State:             model.StateValidating,
		SuccessfulImports: []model.SuccessEntry{},
		ClientsNotFound:   []model.ClientMissEntry{},
		Errors:            []model.ErrorEntry{},
	}

	firmID, err := imp.store.FirmForUser(ctx, userID)
	if err != nil {
		res.State = model.StateFailed
		return res, fmt.Errorf("resolve firm: %w", err)
	}
	if len(rows) == 0 {
		res.State = model.StateFailed
		return res, fmt.Errorf("spreadsheet has no data rows")
	}

	clients, err := imp.store.ClientsByFirm(ctx, firmID)
	if err != nil {
		res.State = model.StateFailed
		return res, fmt.Errorf("load firm clients: %w", err)
	}
	lookup := BuildClientLookup(clients)
	validator := NewValidator(imp.aliases, lookup)

	batchSize := imp.opts.BatchSize
	totalBatches := (len(rows) + batchSize - 1) / batchSize
	res.State = model.StateProcessing

	imp.log.Info().
		Str("firm_id", firmID).
		Int("rows", len(rows)).
		Int("batches", totalBatches).
		Int("clients", len(lookup)).
		Msg("import starting")

	var mu sync.Mutex
	processed := 0

	for b := 0; b < totalBatches; b++ {
		if ctx.Err() != nil {
			res.State = model.StateCancelled
			imp.log.Warn().Int("processed", processed).Msg("import cancelled")
			return res, nil
		}

		lo := b * batchSize
		hi := lo + batchSize
		if hi > len(rows) {
			hi = len(rows)
		}
		batch := rows[lo:hi]

		// All rows of a batch run together; the batch settles before the
		// next one starts, so concurrency never exceeds one batch's width.
		g := new(errgroup.Group)
		for i := range batch {
			rowNumber := imp.opts.HeaderRow + lo + i + 1
			row := batch[i]
			g.Go(func() error {
				imp.processRow(ctx, validator, firmID, userID, rowNumber, row, &res, &mu)
				return nil
			})
		}
		_ = g.Wait()
		processed = hi

		if imp.OnProgress != nil {
			imp.OnProgress(model.Progress{
				Current:      processed,
				Total:        len(rows),
				Phase:        model.StateProcessing,
				CurrentBatch: b + 1,
				TotalBatches: totalBatches,
			})
		}

		if b < totalBatches-1 {
			if err := imp.throttle.Pause(ctx); err != nil {
				res.State = model.StateCancelled
				imp.log.Warn().Int("processed", processed).Msg("import cancelled")
				return res, nil
			}
		}
	}

	res.State = model.StateDone
	imp.log.Info().
		Int("success", res.SuccessCount).
		Int("failed", res.FailureCount).
		Int("client_not_found", res.ClientNotFoundCount).
		Msg("import done")
	return res, nil
}

// processRow handles exactly one row. Every failure path lands in the
// accumulator; nothing escapes to abort the batch.
func (imp *Importer) processRow(ctx context.Context, validator *Validator, firmID, userID string, rowNumber int, row map[string]string, res *model.Result, mu *sync.Mutex) {
	defer func() {
		if r := recover(); r != nil {
			mu.Lock()
			res.Errors = append(res.Errors, model.ErrorEntry{RowNumber: rowNumber, Error: fmt.Sprintf("row panicked: %v", r)})
			res.FailureCount++
			mu.Unlock()
			imp.log.Error().Int("row", rowNumber).Interface("panic", r).Msg("row processing panicked")
		}
	}()

	val := validator.Validate(rowNumber, row)
	if blocking := blockingErrors(val.Errors); len(blocking) > 0 {
		mu.Lock()
		res.Errors = append(res.Errors, model.ErrorEntry{RowNumber: rowNumber, Error: strings.Join(blocking, "; ")})
		res.FailureCount++
		mu.Unlock()
		return
	}

	rec := imp.buildRecord(val, row, firmID, userID)
	if err := imp.store.InsertCase(ctx, rec); err != nil {
		mu.Lock()
		res.Errors = append(res.Errors, model.ErrorEntry{RowNumber: rowNumber, Error: err.Error()})
		res.FailureCount++
		mu.Unlock()
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if val.ClientName != "" && val.MatchedClientID == "" {
		// soft miss: the case is in, just without a client link
		res.ClientsNotFound = append(res.ClientsNotFound, model.ClientMissEntry{RowNumber: rowNumber, ClientName: val.ClientName})
		res.ClientNotFoundCount++
		return
	}
	res.SuccessfulImports = append(res.SuccessfulImports, model.SuccessEntry{
		RowNumber:  rowNumber,
		Title:      val.Title,
		Identifier: val.Identifier,
		ClientName: val.MatchedClient,
	})
	res.SuccessCount++
}

// buildRecord assembles the persisted shape from an already-validated row.
func (imp *Importer) buildRecord(val model.RowValidation, row map[string]string, firmID, userID string) store.CaseRecord {
	rec := store.CaseRecord{
		ID:        uuid.NewString(),
		FirmID:    firmID,
		CreatedBy: userID,
		Title:     val.Title,
		Status:    imp.opts.CaseStatus,
	}

	if v := Extract(row, imp.aliases.ReferenceNumber); v != "" {
		rec.ReferenceNumber = &v
	}
	if v := Extract(row, imp.aliases.CaseNumber); v != "" {
		rec.CaseNumber = &v
	}
	if v := Extract(row, imp.aliases.CNR); v != "" {
		n := NormalizeCNR(v)
		rec.CNRNumber = &n
	}
	if v := Extract(row, imp.aliases.CourtType); v != "" {
		rec.CourtType = &v
	}
	if v := Extract(row, imp.aliases.CourtName); v != "" {
		rec.CourtName = &v
	}
	if v := strings.ToLower(Extract(row, imp.aliases.ByAgainst)); v == "by" || v == "against" {
		rec.ByAgainst = &v
	}
	if val.MatchedClientID != "" {
		id := val.MatchedClientID
		rec.ClientID = &id
	}

	setDate := func(dst **string, aliases []string) {
		if d := ParseDate(Extract(row, aliases)); d != "" {
			*dst = &d
		}
	}
	setDate(&rec.FilingDate, imp.aliases.FilingDate)
	setDate(&rec.DisposalDate, imp.aliases.DisposalDate)
	setDate(&rec.DecisionDate, imp.aliases.DecisionDate)
	setDate(&rec.NextHearingDate, imp.aliases.NextHearingDate)
	return rec
}
