// Package persistence implements the registry context's storage against the
// shared driver-portable executor.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// AmendmentRepository persists amendments.
type AmendmentRepository struct {
	conn database.Connection
}

// NewAmendmentRepository creates an amendment repository.
func NewAmendmentRepository(conn database.Connection) *AmendmentRepository {
	return &AmendmentRepository{conn: conn}
}

const amendmentColumns = `id, scheme_id, kind, reason, new_sections, status, submitted_by, decided_by, processed_at, version, created_at, updated_at`

// Save inserts or conditionally updates an amendment.
func (r *AmendmentRepository) Save(ctx context.Context, a *amendment.Amendment) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	sections, err := json.Marshal(a.NewSections())
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	var decidedBy any
	if a.DecidedBy() != nil {
		decidedBy = *a.DecidedBy()
	}
	var processedAt any
	if a.ProcessedAt() != nil {
		processedAt = *a.ProcessedAt()
	}

	if a.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO amendments (`+amendmentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, $10, $11)`,
			a.ID(), a.SchemeID(), string(a.Kind()), a.Reason(), sections,
			string(a.Status()), a.SubmittedBy(), decidedBy, processedAt,
			a.CreatedAt(), a.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert amendment: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE amendments
		SET status = $1, decided_by = $2, processed_at = $3,
		    version = version + 1, updated_at = $4
		WHERE id = $5 AND version = $6`,
		string(a.Status()), decidedBy, processedAt, a.UpdatedAt(), a.ID(), a.Version(),
	)
	if err != nil {
		return fmt.Errorf("update amendment: %w", err)
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

// FindByID loads an amendment by its identifier.
func (r *AmendmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*amendment.Amendment, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+amendmentColumns+` FROM amendments WHERE id = $1`, id)
	return scanAmendment(row)
}

// ListByScheme returns the scheme's amendments, newest first.
func (r *AmendmentRepository) ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]*amendment.Amendment, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, `
		SELECT `+amendmentColumns+` FROM amendments
		WHERE scheme_id = $1
		ORDER BY created_at DESC`, schemeID)
	if err != nil {
		return nil, fmt.Errorf("list amendments: %w", err)
	}
	defer rows.Close()

	var out []*amendment.Amendment
	for rows.Next() {
		a, err := scanAmendment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAmendment(row database.Row) (*amendment.Amendment, error) {
	var (
		id          uuid.UUID
		schemeID    uuid.UUID
		kind        string
		reason      string
		sectionsRaw []byte
		status      string
		submittedBy uuid.UUID
		decidedBy   uuid.NullUUID
		processedAt sql.NullTime
		version     int
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)
	err := row.Scan(&id, &schemeID, &kind, &reason, &sectionsRaw, &status,
		&submittedBy, &decidedBy, &processedAt, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, amendment.ErrAmendmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan amendment: %w", err)
	}

	var sections []amendment.Section
	if len(sectionsRaw) > 0 {
		if err := json.Unmarshal(sectionsRaw, &sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	var decided *uuid.UUID
	if decidedBy.Valid {
		v := decidedBy.UUID
		decided = &v
	}

	return amendment.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		schemeID, amendment.Kind(kind), reason, sections,
		workflow.State(status), submittedBy, decided, nullTimePtr(processedAt),
	), nil
}
