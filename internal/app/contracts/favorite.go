package contracts

import (
	"context"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/dto/responses"
)

type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, user *models.AuthUser, providerID string) error
	RemoveFavorite(ctx context.Context, user *models.AuthUser, providerID string) error
	ListFavoriteIDs(ctx context.Context, user *models.AuthUser) (*responses.FavoriteIDs, error)
	ListFavoriteProviders(ctx context.Context, user *models.AuthUser) (*responses.FavoriteProviders, error)
}

type FavoriteRepository interface {
	InsertFavorite(ctx context.Context, favorite *models.Favorite) error
	FindByPatientID(ctx context.Context, patientID string) ([]models.Favorite, error)
	FindByPatientIDAndProviderID(ctx context.Context, patientID, providerID string) (*models.Favorite, error)
	FindByPatientIDAndProviderNPI(ctx context.Context, patientID string, providerNPI int64) (*models.Favorite, error)
	DeleteByPatientIDAndProviderID(ctx context.Context, patientID, providerID string) error
	DeleteByPatientIDAndProviderNPI(ctx context.Context, patientID string, providerNPI int64) error
}
