package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// StartExaminationCommand assigns an examiner and opens the examination.
// The examiner defaults to the caller.
type StartExaminationCommand struct {
	DeedID     uuid.UUID
	ExaminerID uuid.UUID
	Actor      sharedApplication.Actor
}

func (StartExaminationCommand) CommandName() string { return "deeds.start_examination" }

// StartExaminationResult reports whether examination was freshly opened.
type StartExaminationResult struct {
	AlreadyStarted bool
}

// StartExaminationHandler handles the StartExaminationCommand.
type StartExaminationHandler struct {
	deeds     deed.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewStartExaminationHandler creates a new StartExaminationHandler.
func NewStartExaminationHandler(deeds deed.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *StartExaminationHandler {
	return &StartExaminationHandler{deeds: deeds, committer: committer, uow: uow}
}

// Handle executes the StartExaminationCommand.
func (h *StartExaminationHandler) Handle(ctx context.Context, cmd StartExaminationCommand) (*StartExaminationResult, error) {
	examinerID := cmd.ExaminerID
	if examinerID == uuid.Nil {
		examinerID = cmd.Actor.ID
	}

	var result *StartExaminationResult
	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		d, err := h.deeds.FindByID(txCtx, cmd.DeedID)
		if err != nil {
			return err
		}

		alreadyStarted, err := d.StartExamination(examinerID, cmd.Actor.ID)
		if err != nil {
			return err
		}
		result = &StartExaminationResult{AlreadyStarted: alreadyStarted}
		if alreadyStarted {
			return nil
		}

		if err := h.deeds.Save(txCtx, d); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, d, sharedApplication.NewEventMetadata(cmd.Actor))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
