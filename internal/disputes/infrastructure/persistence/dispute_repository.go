// Package persistence implements the disputes context's storage against the
// shared driver-portable executor, plus the read adapter into planning that
// serves the objection window gate.
package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/disputes/domain/dispute"
	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// DisputeRepository persists disputes.
type DisputeRepository struct {
	conn database.Connection
}

// NewDisputeRepository creates a dispute repository.
func NewDisputeRepository(conn database.Connection) *DisputeRepository {
	return &DisputeRepository{conn: conn}
}

const disputeColumns = `id, subject_type, subject_id, complainant_id, respondent_id, grounds, status, assignee_id, authority, hearing_date, hearing_location, hearing_officer_id, resolution_type, resolution_text, resolution_document, version, created_at, updated_at`

// Save inserts or conditionally updates a dispute.
func (r *DisputeRepository) Save(ctx context.Context, d *dispute.Dispute) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	var respondentID any
	if d.RespondentID() != nil {
		respondentID = *d.RespondentID()
	}
	var assigneeID any
	if d.AssigneeID() != nil {
		assigneeID = *d.AssigneeID()
	}
	var hearingDate, hearingLocation, hearingOfficer any
	if hearing := d.Hearing(); hearing != nil {
		hearingDate = hearing.Date
		hearingLocation = hearing.Location
		hearingOfficer = hearing.OfficerID
	}
	var resType, resText, resDocument any
	if res := d.Resolution(); res != nil {
		resType = res.Type
		resText = res.Text
		resDocument = res.DocumentRef
	}

	if d.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO disputes (`+disputeColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 1, $16, $17)`,
			d.ID(), string(d.SubjectType()), d.SubjectID(), d.ComplainantID(), respondentID,
			d.Grounds(), string(d.Status()), assigneeID, d.Authority(),
			hearingDate, hearingLocation, hearingOfficer,
			resType, resText, resDocument,
			d.CreatedAt(), d.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert dispute: %w", err)
		}
		return nil
	}

	res, err := exec.Exec(ctx, `
		UPDATE disputes
		SET status = $1, assignee_id = $2, authority = $3,
		    hearing_date = $4, hearing_location = $5, hearing_officer_id = $6,
		    resolution_type = $7, resolution_text = $8, resolution_document = $9,
		    version = version + 1, updated_at = $10
		WHERE id = $11 AND version = $12`,
		string(d.Status()), assigneeID, d.Authority(),
		hearingDate, hearingLocation, hearingOfficer,
		resType, resText, resDocument,
		d.UpdatedAt(), d.ID(), d.Version(),
	)
	if err != nil {
		return fmt.Errorf("update dispute: %w", err)
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

// FindByID loads a dispute by its identifier.
func (r *DisputeRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+disputeColumns+` FROM disputes WHERE id = $1`, id)
	return scanDispute(row)
}

// ListBySubject returns the disputes lodged against one record, newest
// first.
func (r *DisputeRepository) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*dispute.Dispute, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, `
		SELECT `+disputeColumns+` FROM disputes
		WHERE subject_id = $1
		ORDER BY created_at DESC`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list disputes: %w", err)
	}
	defer rows.Close()

	var out []*dispute.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDispute(row database.Row) (*dispute.Dispute, error) {
	var (
		id              uuid.UUID
		subjectType     string
		subjectID       uuid.UUID
		complainantID   uuid.UUID
		respondentID    uuid.NullUUID
		grounds         string
		status          string
		assigneeID      uuid.NullUUID
		authority       sql.NullString
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
	err := row.Scan(&id, &subjectType, &subjectID, &complainantID, &respondentID,
		&grounds, &status, &assigneeID, &authority,
		&hearingDate, &hearingLocation, &hearingOfficer,
		&resType, &resText, &resDocument, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, dispute.ErrDisputeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan dispute: %w", err)
	}

	var respondent *uuid.UUID
	if respondentID.Valid {
		v := respondentID.UUID
		respondent = &v
	}
	var assignee *uuid.UUID
	if assigneeID.Valid {
		v := assigneeID.UUID
		assignee = &v
	}
	var hearing *dispute.Hearing
	if hearingDate.Valid {
		hearing = &dispute.Hearing{
			Date:      hearingDate.Time,
			Location:  hearingLocation.String,
			OfficerID: hearingOfficer.UUID,
		}
	}
	var resolution *dispute.Resolution
	if resType.Valid {
		resolution = &dispute.Resolution{
			Type:        resType.String,
			Text:        resText.String,
			DocumentRef: resDocument.String,
		}
	}

	return dispute.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		dispute.SubjectType(subjectType), subjectID, complainantID, respondent,
		grounds, workflow.State(status), assignee, authority.String,
		hearing, resolution,
	), nil
}
