package transfer

import (
	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
	"github.com/sbhunu/landadmin/internal/workflow"
)

const aggregateType = "registry.transfer"

// TransferSubmitted fires when a transfer is lodged.
type TransferSubmitted struct {
	domain.BaseEvent
	TransferID   uuid.UUID `json:"transfer_id"`
	TitleID      uuid.UUID `json:"title_id"`
	FromHolderID uuid.UUID `json:"from_holder_id"`
	ToHolderID   uuid.UUID `json:"to_holder_id"`
}

func NewTransferSubmitted(transferID, titleID, fromHolderID, toHolderID uuid.UUID) *TransferSubmitted {
	return &TransferSubmitted{
		BaseEvent:    domain.NewBaseEvent(transferID, aggregateType, "registry.transfer.submitted"),
		TransferID:   transferID,
		TitleID:      titleID,
		FromHolderID: fromHolderID,
		ToHolderID:   toHolderID,
	}
}

// TransferDecided fires on approval or rejection.
type TransferDecided struct {
	domain.BaseEvent
	TransferID uuid.UUID      `json:"transfer_id"`
	TitleID    uuid.UUID      `json:"title_id"`
	Status     workflow.State `json:"status"`
	Reason     string         `json:"reason,omitempty"`
}

func NewTransferDecided(transferID, titleID uuid.UUID, status workflow.State, reason string) *TransferDecided {
	return &TransferDecided{
		BaseEvent:  domain.NewBaseEvent(transferID, aggregateType, "registry.transfer.decided."+string(status)),
		TransferID: transferID,
		TitleID:    titleID,
		Status:     status,
		Reason:     reason,
	}
}

// TransferProcessed fires exactly once, when the title changes hands.
type TransferProcessed struct {
	domain.BaseEvent
	TransferID         uuid.UUID `json:"transfer_id"`
	TitleID            uuid.UUID `json:"title_id"`
	NewHolderID        uuid.UUID `json:"new_holder_id"`
	RegistrationNumber string    `json:"registration_number"`
}

func NewTransferProcessed(transferID, titleID, newHolderID uuid.UUID, registrationNumber string) *TransferProcessed {
	return &TransferProcessed{
		BaseEvent:          domain.NewBaseEvent(transferID, aggregateType, "registry.transfer.processed"),
		TransferID:         transferID,
		TitleID:            titleID,
		NewHolderID:        newHolderID,
		RegistrationNumber: registrationNumber,
	}
}
