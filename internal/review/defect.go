package review

// DefectCategory classifies an examination defect by the discipline that
// must correct it.
type DefectCategory string

const (
	DefectPlanning    DefectCategory = "planning"
	DefectSurvey      DefectCategory = "survey"
	DefectConveyance  DefectCategory = "conveyance"
	DefectDescription DefectCategory = "description"
)

// Defect is one examination finding attached to a reject or
// request-revision decision.
type Defect struct {
	Category    DefectCategory `json:"category"`
	Description string         `json:"description"`
}

// ResponsibleParty maps a defect to the party that must correct it. Defects
// drive correction notices, so every category routes somewhere; unmatched
// categories fall back to the conveyancer who lodged the draft.
func (d Defect) ResponsibleParty() Party {
	switch d.Category {
	case DefectPlanning:
		return PartyPlanner
	case DefectSurvey:
		return PartySurveyor
	default:
		return PartyConveyancer
	}
}
