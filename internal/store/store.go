// Package store defines the narrow record-store surface the import engine
// needs. The hosted backend owns constraints and uniqueness; this interface
// only reads firm context and client rosters and inserts case records.
package store

import (
	"context"
	"errors"
)

// ErrNoFirm means the importing user has no team_members row, so there is
// no tenant to scope the import to.
var ErrNoFirm = errors.New("user has no firm association")

type Client struct {
	ID       string `db:"id"`
	FirmID   string `db:"firm_id"`
	FullName string `db:"full_name"`
}

// CaseRecord is the persisted shape of one imported row. Pointer fields map
// to nullable columns. CNRNumber is always stored normalized (uppercase, no
// separators).
type CaseRecord struct {
	ID              string  `db:"id"`
	FirmID          string  `db:"firm_id"`
	CreatedBy       string  `db:"created_by"`
	Title           string  `db:"title"`
	ReferenceNumber *string `db:"reference_number"`
	CaseNumber      *string `db:"case_number"`
	CNRNumber       *string `db:"cnr_number"`
	CourtType       *string `db:"court_type"`
	CourtName       *string `db:"court_name"`
	ByAgainst       *string `db:"by_against"`
	ClientID        *string `db:"client_id"`
	Status          string  `db:"status"`
	FilingDate      *string `db:"filing_date"`
	DisposalDate    *string `db:"disposal_date"`
	DecisionDate    *string `db:"decision_date"`
	NextHearingDate *string `db:"next_hearing_date"`
}

type RecordStore interface {
	// FirmForUser resolves the tenant once per run. Returns ErrNoFirm when
	// the user is not on any team.
	FirmForUser(ctx context.Context, userID string) (string, error)
	ClientsByFirm(ctx context.Context, firmID string) ([]Client, error)
	InsertCase(ctx context.Context, rec CaseRecord) error
}
