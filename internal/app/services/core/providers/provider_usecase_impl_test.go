package providers

import (
	"context"
	"errors"
	"fmt"
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

type stubProviderRepository struct {
	rows    []models.Provider
	findErr error
}

func (s *stubProviderRepository) FindProviders(ctx context.Context, request *requests.SearchProviders) ([]models.Provider, error) {
	return s.rows, s.findErr
}

func (s *stubProviderRepository) FindByProviderID(ctx context.Context, providerID string) (*models.Provider, error) {
	for i := range s.rows {
		if s.rows[i].ProviderID == providerID {
			return &s.rows[i], nil
		}
	}
	return nil, nil
}

func (s *stubProviderRepository) FindByProviderIDs(ctx context.Context, providerIDs []string) ([]models.Provider, error) {
	return s.rows, nil
}

func (s *stubProviderRepository) UpsertProvider(ctx context.Context, provider *models.Provider) error {
	return nil
}

type stubRegistryClient struct {
	searchResult *npi_dto.SearchResult
	searchErr    error
	record       *npi_dto.Record
	recordErr    error
}

func (s *stubRegistryClient) SearchRecords(ctx context.Context, request *requests.SearchProviders) (*npi_dto.SearchResult, error) {
	return s.searchResult, s.searchErr
}

func (s *stubRegistryClient) FindRecordByNumber(ctx context.Context, npiNumber int64) (*npi_dto.Record, error) {
	return s.record, s.recordErr
}

func registryRecord(number, firstName, lastName string) npi_dto.Record {
	return npi_dto.Record{
		Number: json.Number(number),
		Basic:  &npi_dto.Basic{FirstName: firstName, LastName: lastName},
	}
}

func TestSearchProviders_LimitOnlyShortCircuits(t *testing.T) {
	repo := &stubProviderRepository{findErr: errors.New("must not be called")}
	client := &stubRegistryClient{searchErr: errors.New("must not be called")}
	uc := NewProviderUsecase(repo, client, zap.NewNop())

	response, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{Limit: 50})
	require.NoError(t, err)

	assert.Empty(t, response.Results)
	assert.Zero(t, response.ResultCount)
	assert.Zero(t, response.APIResultCount)
}

func TestSearchProviders_DirectoryResultsComeFirst(t *testing.T) {
	repo := &stubProviderRepository{rows: []models.Provider{
		{ProviderID: "prov-1", FirstName: "Dana", LastName: "Smith", Taxonomy: "Cardiology"},
	}}
	client := &stubRegistryClient{searchResult: &npi_dto.SearchResult{
		ResultCount: 2,
		Results: []npi_dto.Record{
			registryRecord("1234567890", "Reg", "Smith"),
			registryRecord("1098765432", "Istry", "Smith"),
		},
	}}
	uc := NewProviderUsecase(repo, client, zap.NewNop())

	response, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith"})
	require.NoError(t, err)

	require.Len(t, response.Results, 3)
	assert.True(t, response.Results[0].IsAffiliated)
	assert.Equal(t, "Dana Smith", response.Results[0].Name)
	assert.False(t, response.Results[1].IsAffiliated)
	assert.Equal(t, 1, response.AffiliatedCount)
	assert.Equal(t, 2, response.NPICount)
	assert.Equal(t, 2, response.APIResultCount)
	assert.Equal(t, 3, response.ResultCount)
	assert.Empty(t, response.Error)
}

func TestSearchProviders_TruncatesToLimit(t *testing.T) {
	var records []npi_dto.Record
	for i := 0; i < 5; i++ {
		records = append(records, registryRecord(fmt.Sprintf("12345678%02d", i), "Reg", "Smith"))
	}
	repo := &stubProviderRepository{rows: []models.Provider{
		{ProviderID: "prov-1", FirstName: "Dana", LastName: "Smith"},
	}}
	client := &stubRegistryClient{searchResult: &npi_dto.SearchResult{ResultCount: 5, Results: records}}
	uc := NewProviderUsecase(repo, client, zap.NewNop())

	response, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith", Limit: 3})
	require.NoError(t, err)

	assert.Len(t, response.Results, 3)
	assert.Equal(t, 3, response.ResultCount)
	// Contributing counts stay pre-truncation.
	assert.Equal(t, 1, response.AffiliatedCount)
	assert.Equal(t, 5, response.NPICount)
}

func TestSearchProviders_DirectoryFailureDegradesToRegistryOnly(t *testing.T) {
	repo := &stubProviderRepository{findErr: exceptions.ErrMongoFindDocument(errors.New("down"))}
	client := &stubRegistryClient{searchResult: &npi_dto.SearchResult{
		ResultCount: 1,
		Results:     []npi_dto.Record{registryRecord("1234567890", "Reg", "Smith")},
	}}
	uc := NewProviderUsecase(repo, client, zap.NewNop())

	response, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith"})
	require.NoError(t, err)

	assert.Len(t, response.Results, 1)
	assert.Zero(t, response.AffiliatedCount)
	assert.Empty(t, response.Error)
}

func TestSearchProviders_RegistryFailurePartialSuccess(t *testing.T) {
	repo := &stubProviderRepository{rows: []models.Provider{
		{ProviderID: "prov-1", FirstName: "Dana", LastName: "Smith"},
	}}
	client := &stubRegistryClient{searchErr: &registry.Error{Transport: true, Err: errors.New("timeout")}}
	uc := NewProviderUsecase(repo, client, zap.NewNop())

	response, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith"})
	require.NoError(t, err)

	assert.Len(t, response.Results, 1)
	assert.Equal(t, constvars.ErrClientRegistryUnavailable, response.Error)
	assert.Zero(t, response.NPICount)
}

func TestSearchProviders_RegistryFailureNoAffiliatedPropagates(t *testing.T) {
	t.Run("transport failure maps to 503", func(t *testing.T) {
		client := &stubRegistryClient{searchErr: &registry.Error{Transport: true, Err: errors.New("timeout")}}
		uc := NewProviderUsecase(&stubProviderRepository{}, client, zap.NewNop())

		_, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientRegistryUnavailable, customErr.ClientMessage)
	})

	t.Run("upstream status failure maps to 502", func(t *testing.T) {
		client := &stubRegistryClient{searchErr: &registry.Error{StatusCode: 500, Err: errors.New("boom")}}
		uc := NewProviderUsecase(&stubProviderRepository{}, client, zap.NewNop())

		_, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientRegistryBadGateway, customErr.ClientMessage)
	})
}

func TestSearchProviders_SkipsUnusableRegistryRecords(t *testing.T) {
	client := &stubRegistryClient{searchResult: &npi_dto.SearchResult{
		ResultCount: 2,
		Results: []npi_dto.Record{
			{Number: json.Number("1234567890")}, // no basic block
			registryRecord("1098765432", "Reg", "Smith"),
		},
	}}
	uc := NewProviderUsecase(&stubProviderRepository{}, client, zap.NewNop())

	response, err := uc.SearchProviders(context.Background(), &requests.SearchProviders{LastName: "Smith"})
	require.NoError(t, err)

	assert.Len(t, response.Results, 1)
	assert.Equal(t, 1, response.NPICount)
	assert.Equal(t, 2, response.APIResultCount, "registry total is reported verbatim")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, constvars.SearchLimitDefault, clampLimit(0))
	assert.Equal(t, constvars.SearchLimitMin, clampLimit(-3))
	assert.Equal(t, constvars.SearchLimitMax, clampLimit(1000))
	assert.Equal(t, 25, clampLimit(25))
}

func TestGetProviderByNPI(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		record := registryRecord("1234567890", "Jane", "Doe")
		uc := NewProviderUsecase(&stubProviderRepository{}, &stubRegistryClient{record: &record}, zap.NewNop())

		provider, err := uc.GetProviderByNPI(context.Background(), 1234567890)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", provider.Name)
	})

	t.Run("missing record maps to 404", func(t *testing.T) {
		uc := NewProviderUsecase(&stubProviderRepository{}, &stubRegistryClient{}, zap.NewNop())

		_, err := uc.GetProviderByNPI(context.Background(), 1234567890)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("transport failure maps to 503", func(t *testing.T) {
		client := &stubRegistryClient{recordErr: &registry.Error{Transport: true, Err: errors.New("timeout")}}
		uc := NewProviderUsecase(&stubProviderRepository{}, client, zap.NewNop())

		_, err := uc.GetProviderByNPI(context.Background(), 1234567890)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})
}
