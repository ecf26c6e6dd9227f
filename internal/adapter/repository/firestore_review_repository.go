package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/logger"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) reviewRef(businessID, reviewID string) *firestore.DocumentRef {
	return r.client.Collection("businesses").Doc(businessID).Collection("reviews").Doc(reviewID)
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, businessID, reviewID string) (*entity.Review, error) {
	doc, err := r.reviewRef(businessID, reviewID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, mapFirestoreError(err, "Review", "get review")
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	review.ID = doc.Ref.ID

	return &review, nil
}

// Subscribe opens a snapshot listener on the business's review collection,
// newest first. Delivery follows the store's commit order for that business;
// a slow consumer only ever loses intermediate snapshots, never the latest.
func (r *firestoreReviewRepository) Subscribe(ctx context.Context, businessID string) (repository.ReviewStream, error) {
	ctx, cancel := context.WithCancel(ctx)

	query := r.client.Collection("businesses").Doc(businessID).
		Collection("reviews").
		OrderBy("createdAt", firestore.Desc)

	stream := &reviewStream{
		updates: make(chan []*entity.Review, 1),
		cancel:  cancel,
	}

	go stream.run(query.Snapshots(ctx))

	return stream, nil
}

type reviewStream struct {
	updates chan []*entity.Review
	cancel  context.CancelFunc
}

func (s *reviewStream) Updates() <-chan []*entity.Review {
	return s.updates
}

func (s *reviewStream) Close() {
	s.cancel()
}

func (s *reviewStream) run(snaps *firestore.QuerySnapshotIterator) {
	defer snaps.Stop()
	defer close(s.updates)

	for {
		snap, err := snaps.Next()
		if err != nil {
			if status.Code(err) != codes.Canceled {
				logger.Error("Review stream terminated: %v", err)
			}
			return
		}

		reviews := make([]*entity.Review, 0)
		docs := snap.Documents
		for {
			doc, err := docs.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				logger.Error("Review stream iteration failed: %v", err)
				return
			}

			var review entity.Review
			if err := doc.DataTo(&review); err != nil {
				// A single malformed document must not kill the stream.
				logger.Warn("Skipping malformed review %s: %v", doc.Ref.ID, err)
				continue
			}
			review.ID = doc.Ref.ID
			reviews = append(reviews, &review)
		}

		s.push(reviews)
	}
}

// push delivers with a drop-oldest policy: the buffer holds one pending
// snapshot and a newer one replaces it, so the producer never blocks.
func (s *reviewStream) push(reviews []*entity.Review) {
	select {
	case s.updates <- reviews:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- reviews:
		default:
		}
	}
}

// Report methods

func (r *firestoreReviewRepository) CreateReport(ctx context.Context, businessID, reviewID string, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	_, err := r.reviewRef(businessID, reviewID).Collection("reports").Doc(report.ID).Set(ctx, map[string]interface{}{
		"id":        report.ID,
		"reason":    report.Reason,
		"details":   report.Details,
		"status":    report.Status,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return mapFirestoreError(err, "Review", "create report")
	}

	return nil
}

func (r *firestoreReviewRepository) MarkReported(ctx context.Context, businessID, reviewID string) error {
	_, err := r.reviewRef(businessID, reviewID).Update(ctx, []firestore.Update{
		{Path: "reported", Value: true},
	})
	if err != nil {
		return mapFirestoreError(err, "Review", "mark review reported")
	}

	return nil
}

func (r *firestoreReviewRepository) ResolveReport(ctx context.Context, businessID, reviewID, reportID, reportStatus, resolvedBy string) error {
	reportRef := r.reviewRef(businessID, reviewID).Collection("reports").Doc(reportID)

	_, err := reportRef.Update(ctx, []firestore.Update{
		{Path: "status", Value: reportStatus},
		{Path: "resolvedAt", Value: firestore.ServerTimestamp},
		{Path: "resolvedBy", Value: resolvedBy},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Report", err)
		}
		return mapFirestoreError(err, "Report", "resolve report")
	}

	return nil
}

// Reply methods

// CreateReply runs the one true transaction of this subsystem: read review
// and business from a consistent snapshot, write the reply, create the
// notification and its single recipient. All five steps commit together or
// not at all.
func (r *firestoreReviewRepository) CreateReply(ctx context.Context, businessID, reviewID, content string) error {
	reviewRef := r.reviewRef(businessID, reviewID)
	businessRef := r.client.Collection("businesses").Doc(businessID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		reviewDoc, err := tx.Get(reviewRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Review", err)
			}
			return err
		}

		var review entity.Review
		if err := reviewDoc.DataTo(&review); err != nil {
			return errors.Internal("Failed to parse review data", err)
		}

		businessDoc, err := tx.Get(businessRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Business", err)
			}
			return err
		}

		var business entity.Business
		if err := businessDoc.DataTo(&business); err != nil {
			return errors.Internal("Failed to parse business data", err)
		}

		// Timestamps come from the store's server clock, never ours.
		if err := tx.Update(reviewRef, []firestore.Update{
			{Path: "reply", Value: map[string]interface{}{
				"content":   content,
				"createdAt": firestore.ServerTimestamp,
				"updatedAt": firestore.ServerTimestamp,
			}},
		}); err != nil {
			return err
		}

		notificationRef := r.client.Collection("notifications").NewDoc()
		if err := tx.Set(notificationRef, map[string]interface{}{
			"id":               notificationRef.ID,
			"type":             entity.NotificationTypeNewReply,
			"businessId":       businessID,
			"businessName":     business.Name,
			"businessPhotoURL": business.Image,
			"reviewId":         reviewID,
			"reviewContent":    review.Comment,
			"replyContent":     content,
			"recipientId":      review.UserID,
			"read":             false,
			"createdAt":        firestore.ServerTimestamp,
		}); err != nil {
			return err
		}

		recipientRef := notificationRef.Collection("recipients").NewDoc()
		return tx.Set(recipientRef, map[string]interface{}{
			"id":        recipientRef.ID,
			"userId":    review.UserID,
			"read":      false,
			"createdAt": firestore.ServerTimestamp,
		})
	})

	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return err
		}
		return mapFirestoreError(err, "Review", "reply to review")
	}

	return nil
}

func (r *firestoreReviewRepository) UpdateReplyContent(ctx context.Context, businessID, reviewID, content string) error {
	review, err := r.GetByID(ctx, businessID, reviewID)
	if err != nil {
		return err
	}

	// Editing a reply that does not exist must fail, never silently create one.
	if review.Reply == nil {
		return errors.NotFound("Reply", nil)
	}

	_, err = r.reviewRef(businessID, reviewID).Update(ctx, []firestore.Update{
		{Path: "reply.content", Value: content},
		{Path: "reply.updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return mapFirestoreError(err, "Review", "edit reply")
	}

	return nil
}

func (r *firestoreReviewRepository) ClearReply(ctx context.Context, businessID, reviewID string) error {
	_, err := r.reviewRef(businessID, reviewID).Update(ctx, []firestore.Update{
		{Path: "reply", Value: nil},
	})
	if err != nil {
		return mapFirestoreError(err, "Review", "delete reply")
	}

	return nil
}
