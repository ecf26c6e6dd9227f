package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/locale"
	"tucomercio/pkg/logger"
)

// ReviewUseCase owns the review lifecycle: the live subscription, the
// two-step report write, and the reply state machine
// (NoReply -> Replied -> Replied -> NoReply).
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	loc        *locale.Localizer
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, loc *locale.Localizer) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		loc:        loc,
	}
}

// Subscribe opens a live stream of the business's reviews, newest first.
// An absent business ID yields an empty static sequence, not an error.
func (uc *ReviewUseCase) Subscribe(ctx context.Context, businessID string) (repository.ReviewStream, error) {
	if businessID == "" {
		return newStaticReviewStream(), nil
	}

	stream, err := uc.reviewRepo.Subscribe(ctx, businessID)
	if err != nil {
		return nil, uc.localize(err, locale.MsgReviewsLoadFailed)
	}

	return stream, nil
}

type ReportInput struct {
	Reason  string
	Details string
}

// Report writes the report record, then flags the parent review. The two
// writes are deliberately NOT one transaction: a failure of the flag update
// leaves an orphan report and is surfaced as a partial failure, never
// rolled back and never swallowed.
func (uc *ReviewUseCase) Report(ctx context.Context, businessID, reviewID string, input ReportInput) (*entity.Report, error) {
	if businessID == "" {
		return nil, errors.NotFoundMessage(uc.loc.T(locale.MsgBusinessNotFound), nil)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, errors.BadRequest(uc.loc.T(locale.MsgInvalidInput), nil)
	}

	report := &entity.Report{
		Reason:  input.Reason,
		Details: input.Details,
		Status:  entity.ReportStatusPending,
	}

	if err := uc.reviewRepo.CreateReport(ctx, businessID, reviewID, report); err != nil {
		return nil, uc.localize(err, locale.MsgReportFailed)
	}

	if err := uc.reviewRepo.MarkReported(ctx, businessID, reviewID); err != nil {
		logger.Warn("Report %s created but review %s/%s not flagged: %v", report.ID, businessID, reviewID, err)
		return report, errors.PartialFailure(uc.loc.T(locale.MsgReportPartial), err)
	}

	return report, nil
}

// Reply creates the single authoritative reply together with its fan-out
// notification in one atomic unit. Content is trimmed; whitespace-only
// content is rejected before touching the store.
func (uc *ReviewUseCase) Reply(ctx context.Context, businessID, reviewID, content string) error {
	if businessID == "" {
		return errors.NotFoundMessage(uc.loc.T(locale.MsgBusinessNotFound), nil)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return errors.BadRequest(uc.loc.T(locale.MsgReplyEmpty), nil)
	}

	if err := uc.reviewRepo.CreateReply(ctx, businessID, reviewID, content); err != nil {
		return uc.localize(err, locale.MsgReplyFailed)
	}

	return nil
}

// EditReply changes the reply content in place. createdAt is untouched and
// no notification is created; edits are silent.
func (uc *ReviewUseCase) EditReply(ctx context.Context, businessID, reviewID, content string) error {
	if businessID == "" {
		return errors.NotFoundMessage(uc.loc.T(locale.MsgBusinessNotFound), nil)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return errors.BadRequest(uc.loc.T(locale.MsgReplyEmpty), nil)
	}

	if err := uc.reviewRepo.UpdateReplyContent(ctx, businessID, reviewID, content); err != nil {
		return uc.localize(err, locale.MsgReplyEditFailed)
	}

	return nil
}

// DeleteReply removes the reply. Notifications created for it stay: they
// are an immutable inbox trail, independent of the reply lifecycle.
func (uc *ReviewUseCase) DeleteReply(ctx context.Context, businessID, reviewID string) error {
	if businessID == "" {
		return errors.NotFoundMessage(uc.loc.T(locale.MsgBusinessNotFound), nil)
	}

	if err := uc.reviewRepo.ClearReply(ctx, businessID, reviewID); err != nil {
		return uc.localize(err, locale.MsgReplyDeleteFailed)
	}

	return nil
}

// ResolveReport closes a report as resolved or rejected.
func (uc *ReviewUseCase) ResolveReport(ctx context.Context, businessID, reviewID, reportID, status, resolvedBy string) error {
	if businessID == "" {
		return errors.NotFoundMessage(uc.loc.T(locale.MsgBusinessNotFound), nil)
	}
	if status != entity.ReportStatusResolved && status != entity.ReportStatusRejected {
		return errors.BadRequest(uc.loc.T(locale.MsgReportStatusInvalid), nil)
	}

	if err := uc.reviewRepo.ResolveReport(ctx, businessID, reviewID, reportID, status, resolvedBy); err != nil {
		return uc.localize(err, locale.MsgReportFailed)
	}

	return nil
}

// localize translates a repository error into the product locale, keeping
// its code and status intact.
func (uc *ReviewUseCase) localize(err error, fallbackID string) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return errors.Internal(uc.loc.T(fallbackID), err)
	}

	switch appErr.Code {
	case errors.CodeNotFound:
		switch appErr.Resource {
		case "Business":
			return errors.NotFoundMessage(uc.loc.T(locale.MsgBusinessNotFound), err)
		case "Reply":
			return errors.NotFoundMessage(uc.loc.T(locale.MsgReplyNotFound), err)
		default:
			return errors.NotFoundMessage(uc.loc.T(locale.MsgReviewNotFound), err)
		}
	case errors.CodeConflict:
		return errors.Conflict(uc.loc.T(locale.MsgConcurrentUpdate), err)
	case errors.CodeBadRequest:
		return appErr
	default:
		return errors.New(appErr.Code, uc.loc.T(fallbackID), appErr.Status, err)
	}
}

// staticReviewStream delivers one empty snapshot and then stays quiet until
// closed. Used when the business ID is absent.
type staticReviewStream struct {
	updates chan []*entity.Review
	once    sync.Once
}

func newStaticReviewStream() *staticReviewStream {
	s := &staticReviewStream{
		updates: make(chan []*entity.Review, 1),
	}
	s.updates <- []*entity.Review{}
	return s
}

func (s *staticReviewStream) Updates() <-chan []*entity.Review {
	return s.updates
}

func (s *staticReviewStream) Close() {
	s.once.Do(func() {
		close(s.updates)
	})
}
