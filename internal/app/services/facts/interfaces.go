package facts

import (
	"context"

	"docnet-client/internal/pkg/dto/responses"
)

type FactClient interface {
	List(ctx context.Context) ([]responses.HealthFact, error)
}
