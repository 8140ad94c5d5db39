package donations

import (
	"context"

	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
)

type DonationClient interface {
	List(ctx context.Context) ([]responses.Donation, error)
	ListByUser(ctx context.Context, email string) ([]responses.Donation, error)
	Create(ctx context.Context, request *requests.CreateDonation) (*responses.Donation, error)
	Update(ctx context.Context, request *requests.UpdateDonation) (*responses.Donation, error)
	Delete(ctx context.Context, id string) error
}
