package favorites

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/app/services/core/providers"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/utils"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

var npiPattern = regexp.MustCompile(constvars.RegexNPINumber)

type favoriteUsecase struct {
	FavoriteRepository contracts.FavoriteRepository
	ProviderRepository contracts.ProviderRepository
	RegistryClient     contracts.RegistryClient
	Log                *zap.Logger
}

func NewFavoriteUsecase(
	favoriteRepository contracts.FavoriteRepository,
	providerRepository contracts.ProviderRepository,
	registryClient contracts.RegistryClient,
	logger *zap.Logger,
) contracts.FavoriteUsecase {
	return &favoriteUsecase{
		FavoriteRepository: favoriteRepository,
		ProviderRepository: providerRepository,
		RegistryClient:     registryClient,
		Log:                logger,
	}
}

// parseTarget discriminates a favorite target: a bare 10-digit string is a
// registry NPI, anything else a directory identifier.
func parseTarget(providerID string) (int64, bool) {
	if !npiPattern.MatchString(providerID) {
		return 0, false
	}
	npi, err := strconv.ParseInt(providerID, 10, 64)
	if err != nil {
		return 0, false
	}
	return npi, true
}

func (uc *favoriteUsecase) AddFavorite(ctx context.Context, user *models.AuthUser, providerID string) error {
	if !user.IsPatient() {
		return exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientOnlyPatientsFavorite, constvars.ErrDevValidationFailed)
	}

	favorite := &models.Favorite{
		FavoriteID: utils.GenerateFavoriteID(),
		PatientID:  user.ID,
	}

	if npi, isNPI := parseTarget(providerID); isNPI {
		existing, err := uc.FavoriteRepository.FindByPatientIDAndProviderNPI(ctx, user.ID, npi)
		if err != nil {
			return err
		}
		if existing != nil {
			return exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientAlreadyInFavorites, constvars.ErrDevValidationFailed)
		}
		favorite.ProviderNPI = npi
	} else {
		existing, err := uc.FavoriteRepository.FindByPatientIDAndProviderID(ctx, user.ID, providerID)
		if err != nil {
			return err
		}
		if existing != nil {
			return exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientAlreadyInFavorites, constvars.ErrDevValidationFailed)
		}
		favorite.ProviderID = providerID
	}

	if err := uc.FavoriteRepository.InsertFavorite(ctx, favorite); err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToAddFavorite, constvars.ErrDevMongoInsertDocument)
	}
	return nil
}

func (uc *favoriteUsecase) RemoveFavorite(ctx context.Context, user *models.AuthUser, providerID string) error {
	if !user.IsPatient() {
		return exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientOnlyPatientsFavorite, constvars.ErrDevValidationFailed)
	}

	// Idempotent: removing an absent favorite succeeds.
	if npi, isNPI := parseTarget(providerID); isNPI {
		return uc.FavoriteRepository.DeleteByPatientIDAndProviderNPI(ctx, user.ID, npi)
	}
	return uc.FavoriteRepository.DeleteByPatientIDAndProviderID(ctx, user.ID, providerID)
}

func (uc *favoriteUsecase) ListFavoriteIDs(ctx context.Context, user *models.AuthUser) (*responses.FavoriteIDs, error) {
	response := &responses.FavoriteIDs{Favorites: []string{}}
	if !user.IsPatient() {
		return response, nil
	}

	rows, err := uc.FavoriteRepository.FindByPatientID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		switch {
		case row.ProviderID != "":
			response.Favorites = append(response.Favorites, row.ProviderID)
		case row.ProviderNPI != 0:
			response.Favorites = append(response.Favorites, strconv.FormatInt(row.ProviderNPI, 10))
		}
	}
	return response, nil
}

// ListFavoriteProviders hydrates directory favorites in one batched lookup
// and registry favorites one NPI at a time; a failing NPI lookup is logged
// and skipped so it cannot suppress the rest.
func (uc *favoriteUsecase) ListFavoriteProviders(ctx context.Context, user *models.AuthUser) (*responses.FavoriteProviders, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	response := &responses.FavoriteProviders{Providers: []responses.Provider{}}
	if !user.IsPatient() {
		return response, nil
	}

	rows, err := uc.FavoriteRepository.FindByPatientID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return response, nil
	}

	var directoryIDs []string
	var npis []int64
	for _, row := range rows {
		switch {
		case row.ProviderID != "":
			directoryIDs = append(directoryIDs, row.ProviderID)
		case row.ProviderNPI != 0:
			npis = append(npis, row.ProviderNPI)
		}
	}

	directoryRows, err := uc.ProviderRepository.FindByProviderIDs(ctx, directoryIDs)
	if err != nil {
		uc.Log.Error("favoriteUsecase.ListFavoriteProviders directory lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	for i := range directoryRows {
		response.Providers = append(response.Providers, providers.NormalizeDirectoryRow(&directoryRows[i]))
	}

	for _, npi := range npis {
		record, lookupErr := uc.RegistryClient.FindRecordByNumber(ctx, npi)
		if lookupErr != nil {
			uc.Log.Warn("favoriteUsecase.ListFavoriteProviders registry lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingNPIKey, npi),
				zap.Error(lookupErr),
			)
			continue
		}
		if provider := providers.NormalizeRegistryRecord(record); provider != nil {
			response.Providers = append(response.Providers, *provider)
		}
	}
	return response, nil
}
