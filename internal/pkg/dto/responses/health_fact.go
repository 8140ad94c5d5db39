package responses

type HealthFact struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Source      string `json:"source,omitempty"`
}
