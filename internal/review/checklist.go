package review

// ChecklistItem is one compliance item a reviewer works through. Only
// required items gate approval; optional items are advisory.
type ChecklistItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Complete    bool   `json:"complete"`
}

// MissingRequired returns the codes of required items not yet complete.
func MissingRequired(items []ChecklistItem) []string {
	var missing []string
	for _, item := range items {
		if item.Required && !item.Complete {
			missing = append(missing, item.Code)
		}
	}
	return missing
}

// CheckApprovable enforces the approval gate: every required item must be
// complete before an approve decision is legal.
func CheckApprovable(items []ChecklistItem) error {
	if missing := MissingRequired(items); len(missing) > 0 {
		return &ChecklistIncompleteError{Missing: missing}
	}
	return nil
}

// MarkComplete sets the completion flag on the item with the given code and
// reports whether it was found.
func MarkComplete(items []ChecklistItem, code string) bool {
	for i := range items {
		if items[i].Code == code {
			items[i].Complete = true
			return true
		}
	}
	return false
}
