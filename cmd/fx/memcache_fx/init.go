package memcache_fx

import (
	"go.uber.org/fx"

	mem "cruisy/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(mem.NewPlannerSession),
	fx.Provide(mem.NewSearchResultCache))
