package domain

// MatchedCompany is the recommendation returned with a successful
// qualification. The front end localizes payRate and bonus for display.
type MatchedCompany struct {
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	PayRate float64 `json:"payRate"`
	Bonus   float64 `json:"bonus"`
}

// matchRules is the static business-rule table. A single launch partner today;
// table-shaped so admin tooling can extend it without touching the flow.
var matchRules = []MatchedCompany{
	{
		Name:    "Brightline Social",
		Slug:    "brightline-social",
		PayRate: 25,
		Bonus:   500,
	},
}

// MatchCompany picks the company recommendation for a qualified applicant.
// The match is a fixed business rule, never derived from user input.
func MatchCompany(_ *QualificationRequest) *MatchedCompany {
	m := matchRules[0]
	return &m
}
