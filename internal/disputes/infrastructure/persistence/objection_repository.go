package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// ObjectionRepository persists objections.
type ObjectionRepository struct {
	conn database.Connection
}

// NewObjectionRepository creates an objection repository.
func NewObjectionRepository(conn database.Connection) *ObjectionRepository {
	return &ObjectionRepository{conn: conn}
}

const objectionColumns = `id, scheme_id, objector_id, grounds, status, hearing_date, hearing_location, hearing_officer_id, resolution_type, resolution_text, resolution_document, version, created_at, updated_at`

// Save inserts or conditionally updates an objection.
func (r *ObjectionRepository) Save(ctx context.Context, o *objection.Objection) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	var hearingDate, hearingLocation, hearingOfficer any
	if hearing := o.Hearing(); hearing != nil {
		hearingDate = hearing.Date
		hearingLocation = hearing.Location
		hearingOfficer = hearing.OfficerID
	}
	var resType, resText, resDocument any
	if res := o.Resolution(); res != nil {
		resType = res.Type
		resText = res.Text
		resDocument = res.DocumentRef
	}

	if o.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO objections (`+objectionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $13)`,
			o.ID(), o.SchemeID(), o.ObjectorID(), o.Grounds(), string(o.Status()),
			hearingDate, hearingLocation, hearingOfficer,
			resType, resText, resDocument,
			o.CreatedAt(), o.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert objection: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE objections
		SET status = $1, hearing_date = $2, hearing_location = $3, hearing_officer_id = $4,
		    resolution_type = $5, resolution_text = $6, resolution_document = $7,
		    version = version + 1, updated_at = $8
		WHERE id = $9 AND version = $10`,
		string(o.Status()), hearingDate, hearingLocation, hearingOfficer,
		resType, resText, resDocument,
		o.UpdatedAt(), o.ID(), o.Version(),
	)
	if err != nil {
		return fmt.Errorf("update objection: %w", err)
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

// FindByID loads an objection by its identifier.
func (r *ObjectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*objection.Objection, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+objectionColumns+` FROM objections WHERE id = $1`, id)
	return scanObjection(row)
}

// ListByScheme returns the scheme's objections, newest first.
func (r *ObjectionRepository) ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]*objection.Objection, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, `
		SELECT `+objectionColumns+` FROM objections
		WHERE scheme_id = $1
		ORDER BY created_at DESC`, schemeID)
	if err != nil {
		return nil, fmt.Errorf("list objections: %w", err)
	}
	defer rows.Close()

	var out []*objection.Objection
	for rows.Next() {
		o, err := scanObjection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanObjection(row database.Row) (*objection.Objection, error) {
	var (
		id              uuid.UUID
		schemeID        uuid.UUID
		objectorID      uuid.UUID
		grounds         string
		status          string
		hearingDate     sql.NullTime
		hearingLocation sql.NullString
		hearingOfficer  uuid.NullUUID
		resType         sql.NullString
		resText         sql.NullString
		resDocument     sql.NullString
		version         int
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)
	err := row.Scan(&id, &schemeID, &objectorID, &grounds, &status,
		&hearingDate, &hearingLocation, &hearingOfficer,
		&resType, &resText, &resDocument, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, objection.ErrObjectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan objection: %w", err)
	}

	var hearing *objection.Hearing
	if hearingDate.Valid {
		hearing = &objection.Hearing{
			Date:      hearingDate.Time,
			Location:  hearingLocation.String,
			OfficerID: hearingOfficer.UUID,
		}
	}
	var resolution *objection.Resolution
	if resType.Valid {
		resolution = &objection.Resolution{
			Type:        resType.String,
			Text:        resText.String,
			DocumentRef: resDocument.String,
		}
	}

	return objection.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		schemeID, objectorID, grounds, workflow.State(status),
		hearing, resolution,
	), nil
}
