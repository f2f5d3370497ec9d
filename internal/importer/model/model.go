package model

import "time"

// State tracks where a run is in its lifecycle. Failed is reached only on
// setup errors (no firm, empty file); row-level trouble never fails a run.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateProcessing State = "processing"
	StateDone       State = "done"
	StateFailed     State = "failed"
	StateCancelled  State = "cancelled"
)

// Options tune one import run.
type Options struct {
	BatchSize   int           // rows per batch (default 10)
	BatchDelay  time.Duration // pause between batches (default 800ms)
	PreviewRows int           // rows shown in preview (default 5)
	HeaderRow   int           // 1-based header line in the upload (default 1)
	CaseStatus  string        // status stamped on every imported case
}

func (o Options) WithDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = 10
	}
	if o.BatchDelay <= 0 {
		o.BatchDelay = 800 * time.Millisecond
	}
	if o.PreviewRows <= 0 {
		o.PreviewRows = 5
	}
	if o.HeaderRow <= 0 {
		o.HeaderRow = 1
	}
	if o.CaseStatus == "" {
		o.CaseStatus = "disposed"
	}
	return o
}

// Progress is emitted once per batch so the hosting UI can render a bar.
type Progress struct {
	Current      int   `json:"current"`
	Total        int   `json:"total"`
	Phase        State `json:"phase"`
	CurrentBatch int   `json:"currentBatch"`
	TotalBatches int   `json:"totalBatches"`
}

// RowValidation is the Row Validator's verdict on a single row. Used as-is
// by the preview and consulted again on the commit path, so the two cannot
// drift.
type RowValidation struct {
	RowNumber         int      `json:"rowNumber"`
	Title             string   `json:"title"`
	Identifier        string   `json:"identifier"`
	ClientName        string   `json:"clientName"`
	MatchedClient     string   `json:"matchedClient,omitempty"`
	MatchedClientID   string   `json:"-"`
	HasRequiredFields bool     `json:"hasRequiredFields"`
	Errors            []string `json:"errors,omitempty"`
}

// Preview shows the first few rows plus their validation, before any write.
type Preview struct {
	Rows    []map[string]string `json:"rows"`
	Results []RowValidation     `json:"validationResults"`
}

type SuccessEntry struct {
	RowNumber  int    `json:"rowNumber"`
	Title      string `json:"title"`
	Identifier string `json:"identifier"`
	ClientName string `json:"clientName,omitempty"`
}

type ClientMissEntry struct {
	RowNumber  int    `json:"rowNumber"`
	ClientName string `json:"clientName"`
}

type ErrorEntry struct {
	RowNumber int    `json:"rowNumber"`
	Error     string `json:"error"`
}

// Result is the append-only accumulator for one run. Every processed row
// lands in exactly one of the three buckets.
type Result struct {
	State               State             `json:"state"`
	SuccessCount        int               `json:"successCount"`
	FailureCount        int               `json:"failureCount"`
	ClientNotFoundCount int               `json:"clientNotFoundCount"`
	SuccessfulImports   []SuccessEntry    `json:"successfulImports"`
	ClientsNotFound     []ClientMissEntry `json:"clientsNotFound"`
	Errors              []ErrorEntry      `json:"errors"`
}
