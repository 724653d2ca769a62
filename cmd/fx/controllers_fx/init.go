package controllers_fx

import (
	"go.uber.org/fx"

	"cruisy/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewExportController))
