package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// TransferRepository persists transfers.
type TransferRepository struct {
	conn database.Connection
}

// NewTransferRepository creates a transfer repository.
func NewTransferRepository(conn database.Connection) *TransferRepository {
	return &TransferRepository{conn: conn}
}

const transferColumns = `id, title_id, from_holder_id, to_holder_id, status, submitted_by, decided_by, registration_number, processed_at, version, created_at, updated_at`

// Save inserts or conditionally updates a transfer.
func (r *TransferRepository) Save(ctx context.Context, t *transfer.Transfer) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	var decidedBy any
	if t.DecidedBy() != nil {
		decidedBy = *t.DecidedBy()
	}
	var regNumber any
	if t.RegistrationNumber() != nil {
		regNumber = *t.RegistrationNumber()
	}
	var processedAt any
	if t.ProcessedAt() != nil {
		processedAt = *t.ProcessedAt()
	}

	if t.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO transfers (`+transferColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, $10, $11)`,
			t.ID(), t.TitleID(), t.FromHolderID(), t.ToHolderID(), string(t.Status()),
			t.SubmittedBy(), decidedBy, regNumber, processedAt,
			t.CreatedAt(), t.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert transfer: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE transfers
		SET status = $1, decided_by = $2, registration_number = $3, processed_at = $4,
		    version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7`,
		string(t.Status()), decidedBy, regNumber, processedAt, t.UpdatedAt(), t.ID(), t.Version(),
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
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

// FindByID loads a transfer by its identifier.
func (r *TransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*transfer.Transfer, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+transferColumns+` FROM transfers WHERE id = $1`, id)
	return scanTransfer(row)
}

// ListByTitle returns the title's transfers, newest first.
func (r *TransferRepository) ListByTitle(ctx context.Context, titleID uuid.UUID) ([]*transfer.Transfer, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, `
		SELECT `+transferColumns+` FROM transfers
		WHERE title_id = $1
		ORDER BY created_at DESC`, titleID)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []*transfer.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTransfer(row database.Row) (*transfer.Transfer, error) {
	var (
		id           uuid.UUID
		titleID      uuid.UUID
		fromHolderID uuid.UUID
		toHolderID   uuid.UUID
		status       string
		submittedBy  uuid.UUID
		decidedBy    uuid.NullUUID
		regNumber    sql.NullString
		processedAt  sql.NullTime
		version      int
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)
	err := row.Scan(&id, &titleID, &fromHolderID, &toHolderID, &status, &submittedBy,
		&decidedBy, &regNumber, &processedAt, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, transfer.ErrTransferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan transfer: %w", err)
	}

	var decided *uuid.UUID
	if decidedBy.Valid {
		v := decidedBy.UUID
		decided = &v
	}
	var registration *string
	if regNumber.Valid {
		v := regNumber.String
		registration = &v
	}

	return transfer.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		titleID, fromHolderID, toHolderID,
		workflow.State(status), submittedBy, decided, registration, nullTimePtr(processedAt),
	), nil
}
