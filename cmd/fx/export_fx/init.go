package export_fx

import (
	"go.uber.org/fx"

	"cruisy/internal/services"
)

var Module = fx.Provide(services.NewExportService)
