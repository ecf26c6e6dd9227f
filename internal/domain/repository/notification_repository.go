package repository

import (
	"context"

	"tucomercio/internal/domain/entity"
)

// NotificationRepository reads the fan-out inbox. Notification records are
// only ever created inside the reply transaction, so there is no Create here.
type NotificationRepository interface {
	ListByRecipient(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID string) error
}
