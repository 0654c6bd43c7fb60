package memcache_fx

import (
	"go.uber.org/fx"

	"cupid/internal/scoring"
	mem "cupid/pkg/memcache"
)

var Module = fx.Provide(provideCatalogCache)

func provideCatalogCache() mem.Store[*scoring.Catalog] {
	return mem.NewTTLStore[*scoring.Catalog]()
}
