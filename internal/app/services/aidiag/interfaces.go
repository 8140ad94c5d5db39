package aidiag

import (
	"context"

	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
)

// DiagnosisClient asks the backend's AI assistant for possible conditions
// matching a free-text symptom description. The answer is informational only
// and is rendered with that caveat.
type DiagnosisClient interface {
	Diagnose(ctx context.Context, request *requests.Diagnose) (*responses.AIDiagnosis, error)
}
