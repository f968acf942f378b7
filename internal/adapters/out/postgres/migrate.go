package postgres

import (
	"lastmile/internal/adapters/out/postgres/auditrepo"
	"lastmile/internal/adapters/out/postgres/driverrepo"
	"lastmile/internal/adapters/out/postgres/incidentrepo"
	"lastmile/internal/adapters/out/postgres/orderrepo"
	"lastmile/internal/adapters/out/postgres/partyrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the application persists to.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&incidentrepo.IncidentDTO{},
		&incidentrepo.EscalationDTO{},
		&incidentrepo.ConversationDTO{},
		&partyrepo.UserDTO{},
		&partyrepo.MerchantDTO{},
		&partyrepo.FeedbackDTO{},
		&auditrepo.ToolCallDTO{},
	)
}
