package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// ActivityService records engagement events in the audit trail.
type ActivityService interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
}
