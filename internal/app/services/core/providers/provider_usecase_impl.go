package providers

import (
	"context"
	"errors"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/services/shared/registry"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type providerUsecase struct {
	ProviderRepository contracts.ProviderRepository
	RegistryClient     contracts.RegistryClient
	Log                *zap.Logger
}

func NewProviderUsecase(
	providerRepository contracts.ProviderRepository,
	registryClient contracts.RegistryClient,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerRepository,
		RegistryClient:     registryClient,
		Log:                logger,
	}
}

func clampLimit(limit int) int {
	if limit == 0 {
		return constvars.SearchLimitDefault
	}
	if limit < constvars.SearchLimitMin {
		return constvars.SearchLimitMin
	}
	if limit > constvars.SearchLimitMax {
		return constvars.SearchLimitMax
	}
	return limit
}

// SearchProviders merges directory rows and registry records, directory
// first. Directory failures degrade to an empty affiliated set; registry
// failures either degrade to a partial response (when affiliated results
// exist) or propagate as a gateway error.
func (uc *providerUsecase) SearchProviders(ctx context.Context, request *requests.SearchProviders) (*responses.SearchProviders, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	request.Limit = clampLimit(request.Limit)

	response := &responses.SearchProviders{Results: []responses.Provider{}}
	if !request.HasFilter() {
		return response, nil
	}

	affiliated := uc.searchDirectory(ctx, request)

	npiResults, apiResultCount, registryErr := uc.searchRegistry(ctx, request)
	if registryErr != nil {
		if len(affiliated) == 0 {
			return nil, registryErr
		}
		// Partial success: keep the affiliated results and surface the
		// registry failure in-band.
		uc.Log.Warn("providerUsecase.SearchProviders degrading to affiliated-only results",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(registryErr),
		)
		response.Error = registryErr.ClientMessage
	}

	combined := append(affiliated, npiResults...)
	if len(combined) > request.Limit {
		combined = combined[:request.Limit]
	}
	if combined == nil {
		combined = []responses.Provider{}
	}

	response.Results = combined
	response.ResultCount = len(combined)
	response.AffiliatedCount = len(affiliated)
	response.NPICount = len(npiResults)
	response.APIResultCount = apiResultCount
	return response, nil
}

func (uc *providerUsecase) searchDirectory(ctx context.Context, request *requests.SearchProviders) []responses.Provider {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	rows, err := uc.ProviderRepository.FindProviders(ctx, request)
	if err != nil {
		uc.Log.Error("providerUsecase.SearchProviders directory lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	results := make([]responses.Provider, 0, len(rows))
	for i := range rows {
		results = append(results, NormalizeDirectoryRow(&rows[i]))
	}
	return results
}

func (uc *providerUsecase) searchRegistry(ctx context.Context, request *requests.SearchProviders) ([]responses.Provider, int, *exceptions.CustomError) {
	searchResult, err := uc.RegistryClient.SearchRecords(ctx, request)
	if err != nil {
		var registryErr *registry.Error
		if errors.As(err, &registryErr) && !registryErr.Transport {
			return nil, 0, exceptions.WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryBadGateway, constvars.ErrDevRegistryStatus)
		}
		return nil, 0, exceptions.WrapWithError(err, constvars.StatusServiceUnavailable, constvars.ErrClientRegistryUnavailable, constvars.ErrDevRegistryTransport)
	}

	results := make([]responses.Provider, 0, len(searchResult.Results))
	for i := range searchResult.Results {
		if provider := NormalizeRegistryRecord(&searchResult.Results[i]); provider != nil {
			results = append(results, *provider)
		}
	}
	return results, searchResult.ResultCount, nil
}

func (uc *providerUsecase) GetProviderByNPI(ctx context.Context, npiNumber int64) (*responses.Provider, error) {
	record, err := uc.RegistryClient.FindRecordByNumber(ctx, npiNumber)
	if err != nil {
		var registryErr *registry.Error
		if errors.As(err, &registryErr) && !registryErr.Transport {
			return nil, exceptions.WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryBadGateway, constvars.ErrDevRegistryStatus)
		}
		return nil, exceptions.WrapWithError(err, constvars.StatusServiceUnavailable, constvars.ErrClientRegistryUnavailable, constvars.ErrDevRegistryTransport)
	}

	provider := NormalizeRegistryRecord(record)
	if provider == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientProviderNotFound, constvars.ErrDevRegistryStatus)
	}
	return provider, nil
}
