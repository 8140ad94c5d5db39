package consultations

import (
	"context"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
)

// ConsultationClient drives the second-opinion workflow: a patient attaches a
// report and a message to a named doctor; the doctor approves or rejects with
// an optional reply.
type ConsultationClient interface {
	Doctors(ctx context.Context) ([]responses.Doctor, error)
	Request(ctx context.Context, request *requests.CreateConsultation, document *restclient.FilePart) error
	StatusByPatient(ctx context.Context, patientID string) ([]responses.ConsultationStatus, error)
	RequestsForDoctor(ctx context.Context, doctorID string) ([]responses.ConsultationRequest, error)
	Approve(ctx context.Context, request *requests.ResolveConsultation) error
	Reject(ctx context.Context, request *requests.ResolveConsultation) error
	Download(ctx context.Context, requestID string) ([]byte, error)
}
