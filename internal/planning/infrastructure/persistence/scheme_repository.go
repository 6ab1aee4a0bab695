// Package persistence implements the planning context's storage against the
// shared driver-portable executor.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// SchemeRepository persists planning schemes.
type SchemeRepository struct {
	conn database.Connection
}

// NewSchemeRepository creates a scheme repository.
func NewSchemeRepository(conn database.Connection) *SchemeRepository {
	return &SchemeRepository{conn: conn}
}

const schemeColumns = `id, scheme_number, name, local_authority, planner_id, state, reviewer_id, checklist, window_start, window_end, version, created_at, updated_at`

// Save inserts a new scheme or conditionally updates an existing one. A
// version-0 aggregate is new; anything else was loaded and must still be at
// its loaded version for the update to match.
func (r *SchemeRepository) Save(ctx context.Context, s *scheme.Scheme) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	checklist, err := json.Marshal(s.Checklist())
	if err != nil {
		return fmt.Errorf("marshal checklist: %w", err)
	}
	var reviewerID any
	if s.ReviewerID() != nil {
		reviewerID = *s.ReviewerID()
	}
	windowStart, windowEnd := s.Window()
	var wStart, wEnd any
	if windowStart != nil {
		wStart = *windowStart
	}
	if windowEnd != nil {
		wEnd = *windowEnd
	}

	if s.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO schemes (`+schemeColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, $11, $12)`,
			s.ID(), s.SchemeNumber(), s.Name(), s.LocalAuthority(), s.PlannerID(),
			string(s.State()), reviewerID, checklist, wStart, wEnd,
			s.CreatedAt(), s.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert scheme: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE schemes
		SET name = $1, local_authority = $2, state = $3, reviewer_id = $4,
		    checklist = $5, window_start = $6, window_end = $7,
		    version = version + 1, updated_at = $8
		WHERE id = $9 AND version = $10`,
		s.Name(), s.LocalAuthority(), string(s.State()), reviewerID,
		checklist, wStart, wEnd, s.UpdatedAt(),
		s.ID(), s.Version(),
	)
	if err != nil {
		return fmt.Errorf("update scheme: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// FindByID loads a scheme by its identifier.
func (r *SchemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*scheme.Scheme, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+schemeColumns+` FROM schemes WHERE id = $1`, id)
	return scanScheme(row)
}

// FindBySchemeNumber loads a scheme by its registry number.
func (r *SchemeRepository) FindBySchemeNumber(ctx context.Context, schemeNumber string) (*scheme.Scheme, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+schemeColumns+` FROM schemes WHERE scheme_number = $1`, schemeNumber)
	return scanScheme(row)
}

func scanScheme(row database.Row) (*scheme.Scheme, error) {
	var (
		id             uuid.UUID
		schemeNumber   string
		name           string
		localAuthority string
		plannerID      uuid.UUID
		state          string
		reviewerID     uuid.NullUUID
		checklistRaw   []byte
		windowStart    sql.NullTime
		windowEnd      sql.NullTime
		version        int
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)
	err := row.Scan(&id, &schemeNumber, &name, &localAuthority, &plannerID, &state,
		&reviewerID, &checklistRaw, &windowStart, &windowEnd, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, scheme.ErrSchemeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan scheme: %w", err)
	}

	var checklist []review.ChecklistItem
	if len(checklistRaw) > 0 {
		if err := json.Unmarshal(checklistRaw, &checklist); err != nil {
			return nil, fmt.Errorf("unmarshal checklist: %w", err)
		}
	}
	var reviewer *uuid.UUID
	if reviewerID.Valid {
		v := reviewerID.UUID
		reviewer = &v
	}
	var wStart, wEnd *time.Time
	if windowStart.Valid {
		t := windowStart.Time.UTC()
		wStart = &t
	}
	if windowEnd.Valid {
		t := windowEnd.Time.UTC()
		wEnd = &t
	}

	return scheme.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		schemeNumber, name, localAuthority, plannerID,
		workflow.State(state), reviewer, checklist, wStart, wEnd,
	), nil
}
