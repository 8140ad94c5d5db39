package facts

import (
	"context"

	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type factClient struct {
	Rest restclient.RestClient
	Log  *zap.Logger
}

func NewFactClient(rest restclient.RestClient, logger *zap.Logger) FactClient {
	return &factClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *factClient) List(ctx context.Context) ([]responses.HealthFact, error) {
	var result []responses.HealthFact
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, constvars.EndpointHealthFacts, nil, nil, &result)
	if err != nil {
		c.Log.Error("factClient.List error fetching facts",
			zap.Error(err),
		)
		return nil, err
	}
	return result, nil
}
