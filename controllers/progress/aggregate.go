package progressController

import "studytrack/models"

// ModuleAggregate is the module-level projection of per-section statuses
type ModuleAggregate struct {
	Status            string `json:"status"`
	CompletedSections int    `json:"completed_sections"`
	TotalSections     int    `json:"total_sections"`
	CurrentSectionID  uint   `json:"current_section_id"` // 0 when nothing is in progress
}

// AggregateModule derives one module status from per-section statuses.
// sections must already be in display order (order_index asc) so the first
// in_progress section wins the current-section slot. Sections missing from
// statusBySection read as not_started. Skipped is a section-level terminal
// state only; it contributes nothing to the module status.
func AggregateModule(sections []models.Section, statusBySection map[uint]string) ModuleAggregate {
	agg := ModuleAggregate{
		Status:        models.StatusNotStarted,
		TotalSections: len(sections),
	}

	for _, s := range sections {
		switch statusBySection[s.ID] {
		case models.StatusDone:
			agg.CompletedSections++
		case models.StatusInProgress:
			if agg.CurrentSectionID == 0 {
				agg.CurrentSectionID = s.ID
			}
		}
	}

	switch {
	case agg.TotalSections > 0 && agg.CompletedSections == agg.TotalSections:
		agg.Status = models.StatusDone
	case agg.CurrentSectionID != 0 || (agg.CompletedSections > 0 && agg.CompletedSections < agg.TotalSections):
		agg.Status = models.StatusInProgress
	}

	return agg
}
