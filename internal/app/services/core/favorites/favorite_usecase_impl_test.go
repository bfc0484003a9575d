package favorites

import (
	"context"
	"errors"
	"medidata-service/internal/app/models"
	"medidata-service/internal/app/services/shared/registry"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/npi_dto"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFavoriteRepository struct {
	rows     []models.Favorite
	inserted []models.Favorite
	deleted  int
}

func (s *stubFavoriteRepository) InsertFavorite(ctx context.Context, favorite *models.Favorite) error {
	s.inserted = append(s.inserted, *favorite)
	return nil
}

func (s *stubFavoriteRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Favorite, error) {
	return s.rows, nil
}

func (s *stubFavoriteRepository) FindByPatientIDAndProviderID(ctx context.Context, patientID, providerID string) (*models.Favorite, error) {
	for i := range s.rows {
		if s.rows[i].PatientID == patientID && s.rows[i].ProviderID == providerID {
			return &s.rows[i], nil
		}
	}
	return nil, nil
}

func (s *stubFavoriteRepository) FindByPatientIDAndProviderNPI(ctx context.Context, patientID string, npi int64) (*models.Favorite, error) {
	for i := range s.rows {
		if s.rows[i].PatientID == patientID && s.rows[i].ProviderNPI == npi {
			return &s.rows[i], nil
		}
	}
	return nil, nil
}

func (s *stubFavoriteRepository) DeleteByPatientIDAndProviderID(ctx context.Context, patientID, providerID string) error {
	s.deleted++
	return nil
}

func (s *stubFavoriteRepository) DeleteByPatientIDAndProviderNPI(ctx context.Context, patientID string, npi int64) error {
	s.deleted++
	return nil
}

type stubProviderRepository struct {
	rows []models.Provider
}

func (s *stubProviderRepository) FindProviders(ctx context.Context, request *requests.SearchProviders) ([]models.Provider, error) {
	return nil, nil
}

func (s *stubProviderRepository) FindByProviderID(ctx context.Context, providerID string) (*models.Provider, error) {
	return nil, nil
}

func (s *stubProviderRepository) FindByProviderIDs(ctx context.Context, providerIDs []string) ([]models.Provider, error) {
	return s.rows, nil
}

func (s *stubProviderRepository) UpsertProvider(ctx context.Context, provider *models.Provider) error {
	return nil
}

type stubRegistryClient struct {
	records map[int64]*npi_dto.Record
	errs    map[int64]error
}

func (s *stubRegistryClient) SearchRecords(ctx context.Context, request *requests.SearchProviders) (*npi_dto.SearchResult, error) {
	return &npi_dto.SearchResult{}, nil
}

func (s *stubRegistryClient) FindRecordByNumber(ctx context.Context, npiNumber int64) (*npi_dto.Record, error) {
	if err, ok := s.errs[npiNumber]; ok {
		return nil, err
	}
	return s.records[npiNumber], nil
}

func patientUser(id string) *models.AuthUser {
	return &models.AuthUser{ID: id, UserMetadata: map[string]string{"role": constvars.RolePatient}}
}

func providerUser(id string) *models.AuthUser {
	return &models.AuthUser{ID: id, UserMetadata: map[string]string{"role": constvars.RoleProvider}}
}

func TestParseTarget(t *testing.T) {
	npi, isNPI := parseTarget("1234567890")
	assert.True(t, isNPI)
	assert.Equal(t, int64(1234567890), npi)

	for _, target := range []string{"123456789", "12345678901", "prov-uuid", "12345abcde", ""} {
		_, isNPI := parseTarget(target)
		assert.False(t, isNPI, "%q must be treated as a directory id", target)
	}
}

func TestAddFavorite(t *testing.T) {
	t.Run("directory id", func(t *testing.T) {
		repo := &stubFavoriteRepository{}
		uc := NewFavoriteUsecase(repo, &stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

		require.NoError(t, uc.AddFavorite(context.Background(), patientUser("pat-1"), "prov-uuid"))

		require.Len(t, repo.inserted, 1)
		assert.Equal(t, "prov-uuid", repo.inserted[0].ProviderID)
		assert.Zero(t, repo.inserted[0].ProviderNPI)
		assert.NotEmpty(t, repo.inserted[0].FavoriteID)
	})

	t.Run("ten digit id lands in the NPI key", func(t *testing.T) {
		repo := &stubFavoriteRepository{}
		uc := NewFavoriteUsecase(repo, &stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

		require.NoError(t, uc.AddFavorite(context.Background(), patientUser("pat-1"), "1234567890"))

		require.Len(t, repo.inserted, 1)
		assert.Empty(t, repo.inserted[0].ProviderID)
		assert.Equal(t, int64(1234567890), repo.inserted[0].ProviderNPI)
	})

	t.Run("duplicate is a conflict", func(t *testing.T) {
		repo := &stubFavoriteRepository{rows: []models.Favorite{{PatientID: "pat-1", ProviderID: "prov-uuid"}}}
		uc := NewFavoriteUsecase(repo, &stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

		err := uc.AddFavorite(context.Background(), patientUser("pat-1"), "prov-uuid")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("non-patient is rejected", func(t *testing.T) {
		uc := NewFavoriteUsecase(&stubFavoriteRepository{}, &stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

		err := uc.AddFavorite(context.Background(), providerUser("prov-1"), "prov-uuid")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestRemoveFavorite_IsIdempotent(t *testing.T) {
	repo := &stubFavoriteRepository{}
	uc := NewFavoriteUsecase(repo, &stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

	require.NoError(t, uc.RemoveFavorite(context.Background(), patientUser("pat-1"), "prov-uuid"))
	require.NoError(t, uc.RemoveFavorite(context.Background(), patientUser("pat-1"), "1234567890"))
	assert.Equal(t, 2, repo.deleted)
}

func TestListFavoriteIDs(t *testing.T) {
	repo := &stubFavoriteRepository{rows: []models.Favorite{
		{PatientID: "pat-1", ProviderID: "prov-uuid"},
		{PatientID: "pat-1", ProviderNPI: 1234567890},
	}}
	uc := NewFavoriteUsecase(repo, &stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

	t.Run("patient gets mixed ids, NPIs stringified", func(t *testing.T) {
		response, err := uc.ListFavoriteIDs(context.Background(), patientUser("pat-1"))
		require.NoError(t, err)
		assert.Equal(t, []string{"prov-uuid", "1234567890"}, response.Favorites)
	})

	t.Run("non-patient gets an empty list, not an error", func(t *testing.T) {
		response, err := uc.ListFavoriteIDs(context.Background(), providerUser("prov-1"))
		require.NoError(t, err)
		assert.Empty(t, response.Favorites)
	})
}

func TestListFavoriteProviders(t *testing.T) {
	favoriteRepo := &stubFavoriteRepository{rows: []models.Favorite{
		{PatientID: "pat-1", ProviderID: "prov-uuid"},
		{PatientID: "pat-1", ProviderNPI: 1234567890},
		{PatientID: "pat-1", ProviderNPI: 1098765432},
	}}
	providerRepo := &stubProviderRepository{rows: []models.Provider{
		{ProviderID: "prov-uuid", FirstName: "Dana", LastName: "Smith"},
	}}
	registryClient := &stubRegistryClient{
		records: map[int64]*npi_dto.Record{
			1234567890: {
				Number: json.Number("1234567890"),
				Basic:  &npi_dto.Basic{FirstName: "Jane", LastName: "Doe"},
			},
		},
		errs: map[int64]error{
			1098765432: &registry.Error{Transport: true, Err: errors.New("timeout")},
		},
	}
	uc := NewFavoriteUsecase(favoriteRepo, providerRepo, registryClient, zap.NewNop())

	response, err := uc.ListFavoriteProviders(context.Background(), patientUser("pat-1"))
	require.NoError(t, err)

	// The failing NPI lookup is skipped, not fatal.
	require.Len(t, response.Providers, 2)
	assert.Equal(t, "Dana Smith", response.Providers[0].Name)
	assert.True(t, response.Providers[0].IsAffiliated)
	assert.Equal(t, "Jane Doe", response.Providers[1].Name)
	assert.False(t, response.Providers[1].IsAffiliated)
}
