package routers

import (
	"fmt"
	"medidata-service/internal/app/services/core/providers"
	"medidata-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, providerController *providers.ProviderController) {
	router.Get("/search", providerController.SearchProviders)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamNPINumber), providerController.GetProviderByNPI)
}
