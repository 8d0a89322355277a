package services

import (
	"time"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portsrepo "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/repositories"
	portssvc "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/services"
)

// NewServiceContainer constructs all application services over the given
// repositories and catalog. The clock is shared so exports and notification
// expiry agree on "now".
func NewServiceContainer(repos portsrepo.RepositoryProvider, catalog *domain.Catalog, currencyCode string, notificationTTL time.Duration, now func() time.Time) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Tally:  NewTallyService(repos.SessionRepo, catalog, notificationTTL, now),
		Export: NewExportService(repos.SessionRepo, catalog, currencyCode, now),
	}
}
