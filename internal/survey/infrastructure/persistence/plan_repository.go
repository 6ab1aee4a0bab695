// Package persistence implements the survey context's storage against the
// shared driver-portable executor.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	"github.com/sbhunu/landadmin/internal/survey/domain/geometry"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	"github.com/sbhunu/landadmin/internal/workflow"
)

// PlanRepository persists survey plans and their sections.
type PlanRepository struct {
	conn database.Connection
}

// NewPlanRepository creates a plan repository.
func NewPlanRepository(conn database.Connection) *PlanRepository {
	return &PlanRepository{conn: conn}
}

const planColumns = `id, plan_number, scheme_id, surveyor_id, state, reviewer_id, version, created_at, updated_at`

// Save writes the plan row conditionally and replaces its section rows. The
// sections piggyback on the plan's version check: they are only rewritten
// after the conditional update has succeeded.
func (r *PlanRepository) Save(ctx context.Context, p *plan.SurveyPlan) error {
	exec := database.ExecutorFromContext(ctx, r.conn)

	var reviewerID any
	if p.ReviewerID() != nil {
		reviewerID = *p.ReviewerID()
	}

	if p.Version() == 0 {
		_, err := exec.Exec(ctx, `
			INSERT INTO survey_plans (`+planColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)`,
			p.ID(), p.PlanNumber(), p.SchemeID(), p.SurveyorID(),
			string(p.State()), reviewerID, p.CreatedAt(), p.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("insert survey plan: %w", err)
		}
		return r.replaceSections(ctx, exec, p)
	}

	res, err := exec.Exec(ctx, `
		UPDATE survey_plans
		SET state = $1, reviewer_id = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5`,
		string(p.State()), reviewerID, p.UpdatedAt(), p.ID(), p.Version(),
	)
	if err != nil {
		return fmt.Errorf("update survey plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrConcurrentModification
	}
	return r.replaceSections(ctx, exec, p)
}

func (r *PlanRepository) replaceSections(ctx context.Context, exec database.Executor, p *plan.SurveyPlan) error {
	if _, err := exec.Exec(ctx, `DELETE FROM survey_sections WHERE plan_id = $1`, p.ID()); err != nil {
		return fmt.Errorf("clear sections: %w", err)
	}
	for _, s := range p.Sections() {
		boundary, err := json.Marshal(s.Boundary)
		if err != nil {
			return fmt.Errorf("marshal boundary: %w", err)
		}
		_, err = exec.Exec(ctx, `
			INSERT INTO survey_sections (plan_id, section_number, floor_area, quota, boundary)
			VALUES ($1, $2, $3, $4, $5)`,
			p.ID(), s.Number, s.FloorArea, s.Quota, boundary,
		)
		if err != nil {
			return fmt.Errorf("insert section %d: %w", s.Number, err)
		}
	}
	return nil
}

// FindByID loads a plan and its sections.
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*plan.SurveyPlan, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+planColumns+` FROM survey_plans WHERE id = $1`, id)
	return r.scanPlan(ctx, exec, row)
}

// FindByPlanNumber loads a plan by its Surveyor-General number.
func (r *PlanRepository) FindByPlanNumber(ctx context.Context, planNumber string) (*plan.SurveyPlan, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `SELECT `+planColumns+` FROM survey_plans WHERE plan_number = $1`, planNumber)
	return r.scanPlan(ctx, exec, row)
}

// FindSealedByScheme returns the sealed plan for a scheme.
func (r *PlanRepository) FindSealedByScheme(ctx context.Context, schemeID uuid.UUID) (*plan.SurveyPlan, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	row := exec.QueryRow(ctx, `
		SELECT `+planColumns+` FROM survey_plans
		WHERE scheme_id = $1 AND state = $2
		ORDER BY updated_at DESC`,
		schemeID, string(workflow.SurveySealed),
	)
	return r.scanPlan(ctx, exec, row)
}

func (r *PlanRepository) scanPlan(ctx context.Context, exec database.Executor, row database.Row) (*plan.SurveyPlan, error) {
	var (
		id         uuid.UUID
		planNumber string
		schemeID   uuid.UUID
		surveyorID uuid.UUID
		state      string
		reviewerID uuid.NullUUID
		version    int
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)
	err := row.Scan(&id, &planNumber, &schemeID, &surveyorID, &state, &reviewerID, &version, &createdAt, &updatedAt)
	if database.IsNoRows(err) {
		return nil, plan.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan survey plan: %w", err)
	}

	sections, err := r.loadSections(ctx, exec, id)
	if err != nil {
		return nil, err
	}
	var reviewer *uuid.UUID
	if reviewerID.Valid {
		v := reviewerID.UUID
		reviewer = &v
	}

	return plan.Rehydrate(
		id, version, createdAt.Time, updatedAt.Time,
		planNumber, schemeID, surveyorID,
		workflow.State(state), reviewer, sections,
	), nil
}

func (r *PlanRepository) loadSections(ctx context.Context, exec database.Executor, planID uuid.UUID) ([]plan.Section, error) {
	rows, err := exec.Query(ctx, `
		SELECT section_number, floor_area, quota, boundary
		FROM survey_sections
		WHERE plan_id = $1
		ORDER BY section_number`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	defer rows.Close()

	var out []plan.Section
	for rows.Next() {
		var (
			s           plan.Section
			quota       decimal.NullDecimal
			boundaryRaw []byte
		)
		if err := rows.Scan(&s.Number, &s.FloorArea, &quota, &boundaryRaw); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		if quota.Valid {
			s.Quota = quota.Decimal
		}
		if len(boundaryRaw) > 0 {
			var ring geometry.Ring
			if err := json.Unmarshal(boundaryRaw, &ring); err != nil {
				return nil, fmt.Errorf("unmarshal boundary: %w", err)
			}
			s.Boundary = ring
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
