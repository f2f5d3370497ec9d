package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"caseimport-service/internal/store"
)

type Store struct {
	db *sqlx.DB
}

func New(dsn string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{db: db}, nil
}

func NewWithDB(db *sqlx.DB) *Store { return &Store{db: db} }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) FirmForUser(ctx context.Context, userID string) (string, error) {
	var firmID string
	err := s.db.QueryRowContext(ctx,
		`SELECT firm_id FROM team_members WHERE user_id = $1 LIMIT 1`, userID).Scan(&firmID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", store.ErrNoFirm
	}
	if err != nil {
		return "", fmt.Errorf("resolve firm for user %s: %w", userID, err)
	}
	return firmID, nil
}

func (s *Store) ClientsByFirm(ctx context.Context, firmID string) ([]store.Client, error) {
	var clients []store.Client
	err := s.db.SelectContext(ctx, &clients,
		`SELECT id, firm_id, full_name FROM clients WHERE firm_id = $1 ORDER BY created_at`, firmID)
	if err != nil {
		return nil, fmt.Errorf("list clients for firm %s: %w", firmID, err)
	}
	return clients, nil
}

func (s *Store) InsertCase(ctx context.Context, rec store.CaseRecord) error {
	query := `INSERT INTO cases (
		id, firm_id, created_by, title, reference_number, case_number, cnr_number,
		court_type, court_name, by_against, client_id, status,
		filing_date, disposal_date, decision_date, next_hearing_date
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
	)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.FirmID, rec.CreatedBy, rec.Title, rec.ReferenceNumber, rec.CaseNumber, rec.CNRNumber,
		rec.CourtType, rec.CourtName, rec.ByAgainst, rec.ClientID, rec.Status,
		rec.FilingDate, rec.DisposalDate, rec.DecisionDate, rec.NextHearingDate,
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}
