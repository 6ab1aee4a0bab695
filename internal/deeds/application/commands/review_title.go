package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
)

// ReviewTitleCommand progresses a pending title through the registrar's
// check: start the review, then approve or reject.
type ReviewTitleCommand struct {
	TitleID  uuid.UUID
	Decision string // start_review, approve, reject
	Reason   string
	Actor    sharedApplication.Actor
}

func (ReviewTitleCommand) CommandName() string { return "deeds.review_title" }

// ReviewTitleHandler handles the ReviewTitleCommand.
type ReviewTitleHandler struct {
	titles    title.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewReviewTitleHandler creates a new ReviewTitleHandler.
func NewReviewTitleHandler(titles title.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *ReviewTitleHandler {
	return &ReviewTitleHandler{titles: titles, committer: committer, uow: uow}
}

// Handle executes the ReviewTitleCommand.
func (h *ReviewTitleHandler) Handle(ctx context.Context, cmd ReviewTitleCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		ti, err := h.titles.FindByID(txCtx, cmd.TitleID)
		if err != nil {
			return err
		}

		switch cmd.Decision {
		case "start_review":
			err = ti.StartReview(cmd.Actor.ID)
		case "approve":
			err = ti.Approve(cmd.Actor.ID)
		case "reject":
			err = ti.Reject(cmd.Reason, cmd.Actor.ID)
		case "cancel":
			err = ti.Cancel(cmd.Reason, cmd.Actor.ID)
		default:
			err = fmt.Errorf("%w: unknown title decision %q", sharedApplication.ErrValidation, cmd.Decision)
		}
		if err != nil {
			return err
		}

		if err := h.titles.Save(txCtx, ti); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, ti, sharedApplication.NewEventMetadata(cmd.Actor))
	})
}

// RegisterTitleCommand enters an approved title on the register, issuing a
// registration number when the caller does not supply one.
type RegisterTitleCommand struct {
	TitleID            uuid.UUID
	RegistrationNumber string
	Actor              sharedApplication.Actor
}

func (RegisterTitleCommand) CommandName() string { return "deeds.register_title" }

// RegisterTitleResult reports the issued registration number.
type RegisterTitleResult struct {
	RegistrationNumber string
}

// RegisterTitleHandler handles the RegisterTitleCommand.
type RegisterTitleHandler struct {
	titles    title.Repository
	committer *persistence.Committer
	uow       sharedApplication.UnitOfWork
}

// NewRegisterTitleHandler creates a new RegisterTitleHandler.
func NewRegisterTitleHandler(titles title.Repository, committer *persistence.Committer, uow sharedApplication.UnitOfWork) *RegisterTitleHandler {
	return &RegisterTitleHandler{titles: titles, committer: committer, uow: uow}
}

// Handle executes the RegisterTitleCommand.
func (h *RegisterTitleHandler) Handle(ctx context.Context, cmd RegisterTitleCommand) (*RegisterTitleResult, error) {
	regNumber := cmd.RegistrationNumber
	if regNumber == "" {
		regNumber = title.GenerateRegistrationNumber(time.Now().UTC())
	}

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		ti, err := h.titles.FindByID(txCtx, cmd.TitleID)
		if err != nil {
			return err
		}
		if err := ti.Register(regNumber, cmd.Actor.ID); err != nil {
			return err
		}
		if err := h.titles.Save(txCtx, ti); err != nil {
			return err
		}
		return h.committer.Flush(txCtx, ti, sharedApplication.NewEventMetadata(cmd.Actor))
	})
	if err != nil {
		return nil, err
	}
	return &RegisterTitleResult{RegistrationNumber: regNumber}, nil
}
