package interfaces

import (
	"context"
	"pestpro_ops/internal/domain/entities"
)

// ITimeEventRepository abstracts DynamoDB persistence for TimeEvent.
//
// The event log is append-only; ListByShiftID returns events in chronological
// order (the table sort key is the timestamp).
type ITimeEventRepository interface {
	Create(ctx context.Context, e entities.TimeEvent) (entities.TimeEvent, error)
	ListByShiftID(ctx context.Context, shiftID string) ([]entities.TimeEvent, error)
}
