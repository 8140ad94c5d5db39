package aidiag

import (
	"context"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/exceptions"
	"docnet-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type diagnosisClient struct {
	Rest restclient.RestClient
	Log  *zap.Logger
}

func NewDiagnosisClient(rest restclient.RestClient, logger *zap.Logger) DiagnosisClient {
	return &diagnosisClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *diagnosisClient) Diagnose(ctx context.Context, request *requests.Diagnose) (*responses.AIDiagnosis, error) {
	utils.SanitizeDiagnoseRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	var diagnosis responses.AIDiagnosis
	err := c.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointAIDiagnosis, nil, request, &diagnosis)
	if err != nil {
		c.Log.Error("diagnosisClient.Diagnose error requesting diagnosis",
			zap.Error(err),
		)
		return nil, err
	}
	return &diagnosis, nil
}
