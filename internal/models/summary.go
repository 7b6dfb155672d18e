package models

// SummaryModel is the user-facing record written by the pipeline: one row per
// submission, append-only. Duplicate URLs simply accumulate rows.
type SummaryModel struct {
	Base
	URL         string `json:"url"         gorm:"index;not null"`
	Summary     string `json:"summary"     gorm:"type:text;not null"`
	Translation string `json:"translation" gorm:"type:text"`
}

func (SummaryModel) TableName() string { return "summaries" }
