package db_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"cruisy/internal/infra"
	"cruisy/internal/repositories"
)

var Module = fx.Provide(
	provideTripStateRepository)

// provideTripStateRepository picks the backing store at boot. Without a
// POSTGRES_URL the planner still works, it just forgets on restart.
func provideTripStateRepository() repositories.TripStateRepository {
	if os.Getenv("POSTGRES_URL") == "" {
		log.Println("POSTGRES_URL not set, using in-memory trip store")
		return repositories.NewMemoryTripStateRepository()
	}
	return repositories.NewGormTripStateRepository(infra.InitPostgresql())
}
