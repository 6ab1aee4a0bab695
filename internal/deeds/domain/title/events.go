package title

import (
	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/shared/domain"
)

const aggregateType = "deeds.title"

// TitleApproved fires when the registrar clears a title for registration.
type TitleApproved struct {
	domain.BaseEvent
	TitleID     uuid.UUID `json:"title_id"`
	TitleNumber string    `json:"title_number"`
}

func NewTitleApproved(titleID uuid.UUID, titleNumber string) *TitleApproved {
	return &TitleApproved{
		BaseEvent:   domain.NewBaseEvent(titleID, aggregateType, "deeds.title.approved"),
		TitleID:     titleID,
		TitleNumber: titleNumber,
	}
}

// TitleRegistered fires when the title enters the register.
type TitleRegistered struct {
	domain.BaseEvent
	TitleID            uuid.UUID `json:"title_id"`
	TitleNumber        string    `json:"title_number"`
	RegistrationNumber string    `json:"registration_number"`
	HolderID           uuid.UUID `json:"holder_id"`
}

func NewTitleRegistered(titleID uuid.UUID, titleNumber, registrationNumber string, holderID uuid.UUID) *TitleRegistered {
	return &TitleRegistered{
		BaseEvent:          domain.NewBaseEvent(titleID, aggregateType, "deeds.title.registered"),
		TitleID:            titleID,
		TitleNumber:        titleNumber,
		RegistrationNumber: registrationNumber,
		HolderID:           holderID,
	}
}

// TitleTransferred fires when ownership changes through the transfer
// sub-workflow.
type TitleTransferred struct {
	domain.BaseEvent
	TitleID            uuid.UUID `json:"title_id"`
	FromHolderID       uuid.UUID `json:"from_holder_id"`
	ToHolderID         uuid.UUID `json:"to_holder_id"`
	RegistrationNumber string    `json:"registration_number"`
}

func NewTitleTransferred(titleID, fromHolderID, toHolderID uuid.UUID, registrationNumber string) *TitleTransferred {
	return &TitleTransferred{
		BaseEvent:          domain.NewBaseEvent(titleID, aggregateType, "deeds.title.transferred"),
		TitleID:            titleID,
		FromHolderID:       fromHolderID,
		ToHolderID:         toHolderID,
		RegistrationNumber: registrationNumber,
	}
}
