package consultations

import (
	"context"
	"fmt"
	"net/url"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/exceptions"
	"docnet-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type consultationClient struct {
	Rest restclient.RestClient
	Log  *zap.Logger
}

func NewConsultationClient(rest restclient.RestClient, logger *zap.Logger) ConsultationClient {
	return &consultationClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *consultationClient) Doctors(ctx context.Context) ([]responses.Doctor, error) {
	var doctors []responses.Doctor
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, constvars.EndpointConsultationDoctors, nil, nil, &doctors)
	if err != nil {
		c.Log.Error("consultationClient.Doctors error fetching doctors",
			zap.Error(err),
		)
		return nil, err
	}
	return doctors, nil
}

func (c *consultationClient) Request(ctx context.Context, request *requests.CreateConsultation, document *restclient.FilePart) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	form := &restclient.MultipartForm{
		Fields: map[string]string{
			constvars.MultipartPartMessage:   request.Message,
			constvars.MultipartPartDoctorID:  request.DoctorID,
			constvars.MultipartPartPatientID: request.PatientID,
		},
		File: document,
	}

	err := c.Rest.DoMultipart(ctx, constvars.EndpointConsultationRequest, form, nil)
	if err != nil {
		if exceptions.IsConflict(err) {
			return exceptions.ErrConsultationAlreadyPending(err)
		}
		c.Log.Error("consultationClient.Request error sending request",
			zap.String(constvars.LoggingUserIDKey, request.PatientID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("consultationClient.Request succeeded",
		zap.String(constvars.LoggingUserIDKey, request.PatientID),
	)
	return nil
}

func (c *consultationClient) StatusByPatient(ctx context.Context, patientID string) ([]responses.ConsultationStatus, error) {
	path := fmt.Sprintf(constvars.EndpointConsultationStatus, url.PathEscape(patientID))
	var statuses []responses.ConsultationStatus
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, path, nil, nil, &statuses)
	if err != nil {
		c.Log.Error("consultationClient.StatusByPatient error fetching statuses",
			zap.Error(err),
		)
		return nil, err
	}
	return statuses, nil
}

func (c *consultationClient) RequestsForDoctor(ctx context.Context, doctorID string) ([]responses.ConsultationRequest, error) {
	path := fmt.Sprintf(constvars.EndpointConsultationsForDoctor, url.PathEscape(doctorID))
	var consults []responses.ConsultationRequest
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, path, nil, nil, &consults)
	if err != nil {
		c.Log.Error("consultationClient.RequestsForDoctor error fetching requests",
			zap.Error(err),
		)
		return nil, err
	}
	return consults, nil
}

func (c *consultationClient) Approve(ctx context.Context, request *requests.ResolveConsultation) error {
	return c.resolve(ctx, constvars.EndpointConsultationApprove, request)
}

// Reject hits the backend's bare /reject path; the approve and reject
// handlers grew apart on the server and never converged.
func (c *consultationClient) Reject(ctx context.Context, request *requests.ResolveConsultation) error {
	return c.resolve(ctx, constvars.EndpointConsultationReject, request)
}

func (c *consultationClient) resolve(ctx context.Context, path string, request *requests.ResolveConsultation) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	query := url.Values{
		constvars.QueryParamRequestID:     []string{request.RequestID},
		constvars.QueryParamDoctorMessage: []string{request.DoctorMessage},
	}
	if err := c.Rest.DoJSON(ctx, constvars.MethodPost, path, query, nil, nil); err != nil {
		c.Log.Error("consultationClient.resolve error resolving request",
			zap.String(constvars.LoggingConsultIDKey, request.RequestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *consultationClient) Download(ctx context.Context, requestID string) ([]byte, error) {
	path := fmt.Sprintf(constvars.EndpointConsultationDownload, url.PathEscape(requestID))
	data, err := c.Rest.Download(ctx, path)
	if err != nil {
		c.Log.Error("consultationClient.Download error downloading document",
			zap.String(constvars.LoggingConsultIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return data, nil
}
