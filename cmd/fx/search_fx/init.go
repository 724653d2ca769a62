package search_fx

import (
	"os"

	"go.uber.org/fx"

	"cruisy/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideContentClient),
	fx.Provide(providePartnerResolver),
	fx.Provide(services.NewSearchService))

func provideContentClient() services.ContentAPIClient {
	base := os.Getenv("CONTENT_API_BASE")
	if base == "" {
		base = "https://cruisytravel.com"
	}
	return services.NewWPContentClient(base)
}

func providePartnerResolver() *services.PartnerResolver {
	base := os.Getenv("SITE_BASE_URL")
	if base == "" {
		base = "https://cruisytravel.com"
	}
	return services.NewPartnerResolver(base, nil)
}
