package registry

import (
	"context"
	"fmt"
	"medidata-service/internal/app/config"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/npi_dto"
	"net/http"
	"net/url"
	"strconv"

	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// npiClient queries the public CMS NPI registry. The registry enforces no
// authentication but is rate limited upstream, so outgoing calls go through
// a local limiter.
type npiClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewNPIClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.RegistryClient {
	rps := cfg.App.RegistryRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &npiClient{
		BaseURL: cfg.Registry.BaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.App.RegistryTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(rps), rps),
		Log:     logger,
	}
}

func (c *npiClient) SearchRecords(ctx context.Context, request *requests.SearchProviders) (*npi_dto.SearchResult, error) {
	params := url.Values{}
	params.Set(constvars.QueryParamVersion, constvars.RegistryVersionParam)
	params.Set(constvars.QueryParamLimit, strconv.Itoa(request.Limit))

	setIfPresent := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	setIfPresent(constvars.QueryParamNumber, request.Number)
	setIfPresent(constvars.QueryParamEnumerationType, request.EnumerationType)
	setIfPresent(constvars.QueryParamTaxonomyDescription, request.TaxonomyDescription)
	setIfPresent(constvars.QueryParamFirstName, request.FirstName)
	setIfPresent(constvars.QueryParamLastName, request.LastName)
	setIfPresent(constvars.QueryParamOrganizationName, request.OrganizationName)
	setIfPresent(constvars.QueryParamCity, request.City)
	setIfPresent(constvars.QueryParamState, request.State)
	setIfPresent(constvars.QueryParamPostalCode, request.PostalCode)
	setIfPresent(constvars.QueryParamCountryCode, request.CountryCode)

	return c.fetch(ctx, params)
}

func (c *npiClient) FindRecordByNumber(ctx context.Context, npiNumber int64) (*npi_dto.Record, error) {
	params := url.Values{}
	params.Set(constvars.QueryParamVersion, constvars.RegistryVersionParam)
	params.Set(constvars.QueryParamNumber, strconv.FormatInt(npiNumber, 10))

	result, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

func (c *npiClient) fetch(ctx context.Context, params url.Values) (*npi_dto.SearchResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, &Error{Transport: true, Err: err}
	}

	endpoint := fmt.Sprintf("%s?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("npiClient registry request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, &Error{Transport: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Warn("npiClient registry returned non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, &Error{StatusCode: resp.StatusCode}
	}

	result := new(npi_dto.SearchResult)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	c.Log.Info("npiClient registry search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, result.ResultCount),
	)
	return result, nil
}
