package workflow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionStampsIdentityAndTime(t *testing.T) {
	entityID := uuid.New()
	actorID := uuid.New()

	tr := NewTransition(entityID, DomainDeed, DeedUnderExamination, DeedApproved, actorID, "examination passed")

	assert.NotEqual(t, uuid.Nil, tr.ID)
	assert.Equal(t, entityID, tr.EntityID)
	assert.Equal(t, DomainDeed, tr.Domain)
	assert.Equal(t, DeedUnderExamination, tr.From)
	assert.Equal(t, DeedApproved, tr.To)
	assert.Equal(t, actorID, tr.ActorID)
	assert.False(t, tr.OccurredAt.IsZero())
	assert.Equal(t, "UTC", tr.OccurredAt.Location().String())
}

func TestWithMetadataCopies(t *testing.T) {
	md := map[string]string{"defects": "2"}
	tr := NewTransition(uuid.New(), DomainDeed, DeedUnderExamination, DeedRevisionRequested, uuid.New(), "defects found").
		WithMetadata(md)

	md["defects"] = "changed"
	assert.Equal(t, "2", tr.Metadata["defects"])
}

func TestRecorderAccumulatesAndClears(t *testing.T) {
	var rec Recorder
	assert.Empty(t, rec.Pending())

	rec.Record(NewTransition(uuid.New(), DomainPlanning, PlanningDraft, PlanningSubmitted, uuid.New(), ""))
	rec.Record(NewTransition(uuid.New(), DomainPlanning, PlanningSubmitted, PlanningUnderReview, uuid.New(), ""))
	require.Len(t, rec.Pending(), 2)

	rec.ClearPending()
	assert.Empty(t, rec.Pending())
}
