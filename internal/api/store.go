package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/events"
)

// Store holds external dependencies required by the API layer. DB is the raw
// pool used for reporting queries; ORM backs the CRUD handlers. Bus may be
// nil when eventing is not configured.
type Store struct {
	DB  *pgxpool.Pool
	ORM *gorm.DB
	Bus *events.Bus
}
