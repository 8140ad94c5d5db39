package donations

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

type donationClient struct {
	Rest restclient.RestClient
	Log  *zap.Logger
}

func NewDonationClient(rest restclient.RestClient, logger *zap.Logger) DonationClient {
	return &donationClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *donationClient) List(ctx context.Context) ([]responses.Donation, error) {
	var donations []responses.Donation
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, constvars.EndpointDonations, nil, nil, &donations)
	if err != nil {
		c.Log.Error("donationClient.List error fetching donations",
			zap.Error(err),
		)
		return nil, err
	}
	return donations, nil
}

func (c *donationClient) ListByUser(ctx context.Context, email string) ([]responses.Donation, error) {
	path := fmt.Sprintf(constvars.EndpointDonationsByUser, url.PathEscape(email))
	var donations []responses.Donation
	err := c.Rest.DoJSON(ctx, constvars.MethodGet, path, nil, nil, &donations)
	if err != nil {
		c.Log.Error("donationClient.ListByUser error fetching user donations",
			zap.Error(err),
		)
		return nil, err
	}
	return donations, nil
}

func (c *donationClient) Create(ctx context.Context, request *requests.CreateDonation) (*responses.Donation, error) {
	utils.SanitizeCreateDonationRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	created := new(responses.Donation)
	err := c.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointDonations, nil, request, created)
	if err != nil {
		if exceptions.IsConflict(err) {
			// The board already carries a request for this patient.
			c.Log.Warn("donationClient.Create duplicate donation request",
				zap.Error(err),
			)
			return nil, exceptions.ErrDonationAlreadyPosted(err)
		}
		c.Log.Error("donationClient.Create error posting donation",
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("donationClient.Create succeeded",
		zap.String(constvars.LoggingDonationIDKey, created.ID),
	)
	return created, nil
}

func (c *donationClient) Update(ctx context.Context, request *requests.UpdateDonation) (*responses.Donation, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	updated := new(responses.Donation)
	err := c.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointDonationUpdate, nil, request, updated)
	if err != nil {
		c.Log.Error("donationClient.Update error updating donation",
			zap.String(constvars.LoggingDonationIDKey, request.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return updated, nil
}

func (c *donationClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf(constvars.EndpointDonationByID, url.PathEscape(id))
	if err := c.Rest.DoJSON(ctx, constvars.MethodDelete, path, nil, nil, nil); err != nil {
		c.Log.Error("donationClient.Delete error deleting donation",
			zap.String(constvars.LoggingDonationIDKey, id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
