package app

import (
	"context"
	"time"

	"budget-tracker/internal/model"
)

// ActivityPublisher enqueues activity events for asynchronous persistence.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}

// SummaryInvalidator drops a user's cached dashboard summary after a mutation.
type SummaryInvalidator interface {
	DeleteSummary(ctx context.Context, userID uint) error
}

// recordMutation invalidates the summary cache and publishes an activity
// event. Both are best effort: the mutation already succeeded, so neither a
// cache nor a broker failure is surfaced to the caller.
func recordMutation(cache SummaryInvalidator, publisher ActivityPublisher, userID uint, action, entityType string, entityID uint) {
	ctx := context.Background()
	if cache != nil {
		_ = cache.DeleteSummary(ctx, userID)
	}
	if publisher != nil {
		_ = publisher.Publish(ctx, model.ActivityEvent{
			UserID:     userID,
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
			CreatedAt:  time.Now(),
		})
	}
}
