package repository

import (
	"context"

	"tucomercio/internal/domain/entity"
)

// ReviewStream is a live, cancellable feed of a business's reviews, ordered
// by creation time descending. Updates delivers full snapshots in the
// store's commit order; the channel closes after Close or when the stream's
// context is cancelled.
type ReviewStream interface {
	Updates() <-chan []*entity.Review
	Close()
}

// ReviewRepository owns the review lifecycle against the backing store.
// CreateReply is the one atomic unit: the reply write, the notification and
// its recipient record either all apply or none do.
type ReviewRepository interface {
	GetByID(ctx context.Context, businessID, reviewID string) (*entity.Review, error)
	Subscribe(ctx context.Context, businessID string) (ReviewStream, error)

	CreateReport(ctx context.Context, businessID, reviewID string, report *entity.Report) error
	MarkReported(ctx context.Context, businessID, reviewID string) error
	ResolveReport(ctx context.Context, businessID, reviewID, reportID, status, resolvedBy string) error

	CreateReply(ctx context.Context, businessID, reviewID, content string) error
	UpdateReplyContent(ctx context.Context, businessID, reviewID, content string) error
	ClearReply(ctx context.Context, businessID, reviewID string) error
}
