// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"gridtrip/models"
)

// CatalogRepository is the read-only query layer over the event catalog.
// The planner never writes through it.
type CatalogRepository interface {
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	GetSessionsForEvent(ctx context.Context, eventID string) ([]models.FixedSession, error)
	GetExperiencesForEvent(ctx context.Context, eventID string) ([]models.Experience, error)
}
