package responses

type PossibleCondition struct {
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

type AIDiagnosis struct {
	PossibleConditions []PossibleCondition `json:"possibleConditions"`
	RecommendedTests   []string            `json:"recommendedTests"`
}
