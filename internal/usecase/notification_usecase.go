package usecase

import (
	"context"
	stderrors "errors"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/locale"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	loc              *locale.Localizer
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, loc *locale.Localizer) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		loc:              loc,
	}
}

func (uc *NotificationUseCase) ListForRecipient(ctx context.Context, userID string, page, limit int) ([]*entity.Notification, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.notificationRepo.ListByRecipient(ctx, userID, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) error {
	if err := uc.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && appErr.Code == errors.CodeNotFound {
			return errors.NotFoundMessage(uc.loc.T(locale.MsgNotificationMissing), err)
		}
		return err
	}

	return nil
}
