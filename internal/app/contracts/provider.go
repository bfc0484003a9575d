package contracts

import (
	"context"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/npi_dto"
)

type ProviderUsecase interface {
	SearchProviders(ctx context.Context, request *requests.SearchProviders) (*responses.SearchProviders, error)
	GetProviderByNPI(ctx context.Context, npiNumber int64) (*responses.Provider, error)
}

type ProviderRepository interface {
	FindProviders(ctx context.Context, request *requests.SearchProviders) ([]models.Provider, error)
	FindByProviderID(ctx context.Context, providerID string) (*models.Provider, error)
	FindByProviderIDs(ctx context.Context, providerIDs []string) ([]models.Provider, error)
	UpsertProvider(ctx context.Context, provider *models.Provider) error
}

type RegistryClient interface {
	SearchRecords(ctx context.Context, request *requests.SearchProviders) (*npi_dto.SearchResult, error)
	FindRecordByNumber(ctx context.Context, npiNumber int64) (*npi_dto.Record, error)
}
