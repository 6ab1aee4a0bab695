package review

// Party is a role that can be held responsible for, or notified about, a
// finding in a land-administration case.
type Party string

const (
	PartyPlanner     Party = "planner"
	PartySurveyor    Party = "surveyor"
	PartyConveyancer Party = "conveyancer"
	PartyObjector    Party = "objector"
	PartyApplicant   Party = "applicant"
)
