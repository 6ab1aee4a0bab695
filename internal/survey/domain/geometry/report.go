package geometry

import "fmt"

// LocationType tells a renderer how to draw a violation.
type LocationType string

const (
	LocationPoint   LocationType = "point"
	LocationPolygon LocationType = "polygon"
)

// ErrorLocation is one topology violation with the coordinates needed to
// visualize it.
type ErrorLocation struct {
	Type          LocationType `json:"type"`
	SectionNumber int          `json:"section_number"`
	// OtherSection is set for overlap violations.
	OtherSection int     `json:"other_section,omitempty"`
	Coordinates  []Point `json:"coordinates"`
	Message      string  `json:"message"`
}

// Report is the outcome of a topology validation pass.
type Report struct {
	Valid    bool            `json:"valid"`
	Errors   []ErrorLocation `json:"errors,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// Boundary pairs a section number with its ring for validation.
type Boundary struct {
	SectionNumber int
	Ring          Ring
}

// ValidateTopology checks closure and self-intersection per section, then
// overlap between every sibling pair.
func ValidateTopology(boundaries []Boundary) Report {
	report := Report{Valid: true}

	for _, b := range boundaries {
		if len(b.Ring) == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("section %d has no boundary geometry", b.SectionNumber))
			continue
		}
		if !b.Ring.IsClosed() {
			report.Valid = false
			report.Errors = append(report.Errors, ErrorLocation{
				Type:          LocationPolygon,
				SectionNumber: b.SectionNumber,
				Coordinates:   b.Ring,
				Message:       fmt.Sprintf("section %d boundary does not close", b.SectionNumber),
			})
			continue
		}
		for _, p := range b.Ring.SelfIntersections() {
			report.Valid = false
			report.Errors = append(report.Errors, ErrorLocation{
				Type:          LocationPoint,
				SectionNumber: b.SectionNumber,
				Coordinates:   []Point{p},
				Message:       fmt.Sprintf("section %d boundary self-intersects", b.SectionNumber),
			})
		}
	}

	for i := 0; i < len(boundaries); i++ {
		for j := i + 1; j < len(boundaries); j++ {
			a, b := boundaries[i], boundaries[j]
			if !a.Ring.IsClosed() || !b.Ring.IsClosed() {
				continue
			}
			if a.Ring.Overlaps(b.Ring) {
				report.Valid = false
				report.Errors = append(report.Errors, ErrorLocation{
					Type:          LocationPolygon,
					SectionNumber: a.SectionNumber,
					OtherSection:  b.SectionNumber,
					Coordinates:   a.Ring,
					Message:       fmt.Sprintf("sections %d and %d overlap", a.SectionNumber, b.SectionNumber),
				})
			}
		}
	}
	return report
}
