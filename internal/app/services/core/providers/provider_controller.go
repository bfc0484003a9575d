package providers

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
}

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase) *ProviderController {
	return &ProviderController{
		Log:             logger,
		ProviderUsecase: providerUsecase,
	}
}

func (ctrl *ProviderController) SearchProviders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get(constvars.QueryParamLimit))

	request := &requests.SearchProviders{
		Number:              query.Get(constvars.QueryParamNumber),
		EnumerationType:     query.Get(constvars.QueryParamEnumerationType),
		TaxonomyDescription: query.Get(constvars.QueryParamTaxonomyDescription),
		FirstName:           query.Get(constvars.QueryParamFirstName),
		LastName:            query.Get(constvars.QueryParamLastName),
		OrganizationName:    query.Get(constvars.QueryParamOrganizationName),
		City:                query.Get(constvars.QueryParamCity),
		State:               query.Get(constvars.QueryParamState),
		PostalCode:          query.Get(constvars.QueryParamPostalCode),
		CountryCode:         query.Get(constvars.QueryParamCountryCode),
		Limit:               limit,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	response, err := ctrl.ProviderUsecase.SearchProviders(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

func (ctrl *ProviderController) GetProviderByNPI(w http.ResponseWriter, r *http.Request) {
	npiNumber, err := strconv.ParseInt(chi.URLParam(r, constvars.URLParamNPINumber), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	provider, err := ctrl.ProviderUsecase.GetProviderByNPI(ctx, npiNumber)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, provider)
}
