// Package persistence implements the deeds context's storage against the
// shared driver-portable executor.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// DeedRepository persists deed drafts.
type DeedRepository struct {
	conn database.Connection
}

// NewDeedRepository creates a deed repository.
func NewDeedRepository(conn database.Connection) *DeedRepository {
	return &DeedRepository{conn: conn}
}

const deedColumns = `id, deed_number, scheme_id, section_number, holder_id, conveyancer_id, state, examiner_id, checklist, defects, area, version, created_at, updated_at`

// Save inserts or conditionally updates a deed. The version condition is
// what keeps two examiners from both approving the same draft.
func (r *DeedRepository) Save(ctx context.Context, d *deed.Deed) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	checklist, err := json.Marshal(d.Checklist())
	if err != nil {
		return fmt.Errorf("marshal checklist: %w", err)
	}
	defects, err := json.Marshal(d.Defects())
	if err != nil {
		return fmt.Errorf("marshal defects: %w", err)
	}
	var examinerID any
	if d.ExaminerID() != nil {
		examinerID = *d.ExaminerID()
	}

	if d.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO deeds (`+deedColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $13)`,
			d.ID(), d.DeedNumber(), d.SchemeID(), d.SectionNumber(), d.HolderID(),
			d.ConveyancerID(), string(d.State()), examinerID, checklist, defects,
			d.Area(), d.CreatedAt(), d.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert deed: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE deeds
		SET state = $1, examiner_id = $2, checklist = $3, defects = $4,
		    area = $5, version = version + 1, updated_at = $6
		WHERE id = $7 AND version = $8`,
		string(d.State()), examinerID, checklist, defects,
		d.Area(), d.UpdatedAt(), d.ID(), d.Version(),
	)
	if err != nil {
		return fmt.Errorf("update deed: %w", err)
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

// FindByID loads a deed by its identifier.
func (r *DeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*deed.Deed, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+deedColumns+` FROM deeds WHERE id = $1`, id)
	return scanDeed(row)
}

// FindByDeedNumber loads a deed by its registry number.
func (r *DeedRepository) FindByDeedNumber(ctx context.Context, deedNumber string) (*deed.Deed, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+deedColumns+` FROM deeds WHERE deed_number = $1`, deedNumber)
	return scanDeed(row)
}

func scanDeed(row database.Row) (*deed.Deed, error) {
	var (
		id            uuid.UUID
		deedNumber    string
		schemeID      uuid.UUID
		sectionNumber int
		holderID      uuid.UUID
		conveyancerID uuid.UUID
		state         string
		examinerID    uuid.NullUUID
		checklistRaw  []byte
		defectsRaw    []byte
		area          decimal.Decimal
		version       int
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)
	err := row.Scan(&id, &deedNumber, &schemeID, &sectionNumber, &holderID, &conveyancerID,
		&state, &examinerID, &checklistRaw, &defectsRaw, &area, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, deed.ErrDeedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan deed: %w", err)
	}

	var checklist []review.ChecklistItem
	if len(checklistRaw) > 0 {
		if err := json.Unmarshal(checklistRaw, &checklist); err != nil {
			return nil, fmt.Errorf("unmarshal checklist: %w", err)
		}
	}
	var defects []review.Defect
	if len(defectsRaw) > 0 {
		if err := json.Unmarshal(defectsRaw, &defects); err != nil {
			return nil, fmt.Errorf("unmarshal defects: %w", err)
		}
	}
	var examiner *uuid.UUID
	if examinerID.Valid {
		v := examinerID.UUID
		examiner = &v
	}

	return deed.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		deedNumber, schemeID, sectionNumber, holderID, conveyancerID,
		workflow.State(state), examiner, checklist, defects, area,
	), nil
}
