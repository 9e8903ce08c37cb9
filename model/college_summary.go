package model

// CollegeSummary is the read model over the college_summary view, one
// row per college that has both tuition and salary data. The view is
// recomputed on every read; there is no write path and no timestamps.
type CollegeSummary struct {
	Name              string `json:"name"`
	State             string `json:"state"`
	InstitutionType   string `json:"institution_type"`
	DegreeLength      string `json:"degree_length"`
	InStateTuition    int    `json:"in_state_tuition"`
	OutOfStateTuition int    `json:"out_of_state_tuition"`
	EarlyCareerPay    int    `json:"early_career_pay"`
	MidCareerPay      int    `json:"mid_career_pay"`
	StemPercent       int    `json:"stem_percent"`
}

// TableName points the model at the view instead of a table.
func (CollegeSummary) TableName() string {
	return "college_summary"
}
