package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) ListByRecipient(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	query := r.client.Collection("notifications").
		Where("recipientId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	// Get total count
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, mapFirestoreError(err, "Notification", "count notifications")
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var notifications []*entity.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, mapFirestoreError(err, "Notification", "iterate notifications")
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, 0, errors.Internal("Failed to parse notification data", err)
		}
		notification.ID = doc.Ref.ID
		notifications = append(notifications, &notification)
	}

	return notifications, total, nil
}

// MarkRead flips the read flag on the notification and on the caller's
// recipient records. Only the addressed recipient may mark it.
func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	notificationRef := r.client.Collection("notifications").Doc(id)

	doc, err := notificationRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Notification", err)
		}
		return mapFirestoreError(err, "Notification", "get notification")
	}

	var notification entity.Notification
	if err := doc.DataTo(&notification); err != nil {
		return errors.Internal("Failed to parse notification data", err)
	}

	if notification.RecipientID != userID {
		return errors.NotFound("Notification", nil)
	}

	if _, err := notificationRef.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	}); err != nil {
		return mapFirestoreError(err, "Notification", "mark notification read")
	}

	iter := notificationRef.Collection("recipients").Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	for {
		recipientDoc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return mapFirestoreError(err, "Notification", "iterate recipients")
		}

		if _, err := recipientDoc.Ref.Update(ctx, []firestore.Update{
			{Path: "read", Value: true},
		}); err != nil {
			return mapFirestoreError(err, "Notification", "mark recipient read")
		}
	}

	return nil
}
