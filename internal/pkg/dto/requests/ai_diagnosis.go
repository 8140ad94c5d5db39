package requests

type Diagnose struct {
	Symptoms string `json:"symptoms" validate:"required"`
}
