package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// TitleRepository persists register title records.
type TitleRepository struct {
	conn database.Connection
}

// NewTitleRepository creates a title repository.
func NewTitleRepository(conn database.Connection) *TitleRepository {
	return &TitleRepository{conn: conn}
}

const titleColumns = `id, title_number, deed_id, scheme_id, section_number, holder_id, state, registration_number, version, created_at, updated_at`

// Save inserts or conditionally updates a title. Transfers ride the same
// version check as state moves, so a concurrent transfer is rejected too.
func (r *TitleRepository) Save(ctx context.Context, t *title.Title) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	var regNumber any
	if t.RegistrationNumber() != nil {
		regNumber = *t.RegistrationNumber()
	}

	if t.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO titles (`+titleColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $10)`,
			t.ID(), t.TitleNumber(), t.DeedID(), t.SchemeID(), t.SectionNumber(),
			t.HolderID(), string(t.State()), regNumber, t.CreatedAt(), t.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert title: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE titles
		SET holder_id = $1, state = $2, registration_number = $3,
		    version = version + 1, updated_at = $4
		WHERE id = $5 AND version = $6`,
		t.HolderID(), string(t.State()), regNumber, t.UpdatedAt(), t.ID(), t.Version(),
	)
	if err != nil {
		return fmt.Errorf("update title: %w", err)
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

// FindByID loads a title by its identifier.
func (r *TitleRepository) FindByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+titleColumns+` FROM titles WHERE id = $1`, id)
	return scanTitle(row)
}

// FindByTitleNumber loads a title by its register number.
func (r *TitleRepository) FindByTitleNumber(ctx context.Context, titleNumber string) (*title.Title, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+titleColumns+` FROM titles WHERE title_number = $1`, titleNumber)
	return scanTitle(row)
}

func scanTitle(row database.Row) (*title.Title, error) {
	var (
		id            uuid.UUID
		titleNumber   string
		deedID        uuid.UUID
		schemeID      uuid.UUID
		sectionNumber int
		holderID      uuid.UUID
		state         string
		regNumber     sql.NullString
		version       int
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)
	err := row.Scan(&id, &titleNumber, &deedID, &schemeID, &sectionNumber, &holderID,
		&state, &regNumber, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, title.ErrTitleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan title: %w", err)
	}

	var registration *string
	if regNumber.Valid {
		v := regNumber.String
		registration = &v
	}

	return title.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		titleNumber, deedID, schemeID, sectionNumber, holderID,
		workflow.State(state), registration,
	), nil
}
