package handler

import (
	"github.com/labstack/echo/v4"

	"tucomercio/internal/usecase"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/response"
	"tucomercio/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, _ := c.Get("uid").(string)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	notifications, total, err := h.notificationUseCase.ListForRecipient(
		c.Request().Context(),
		userID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notifications, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, _ := c.Get("uid").(string)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	notificationID := c.Param("notificationId")
	if notificationID == "" {
		return response.Error(c, errors.BadRequest("Notification ID is required", nil))
	}

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "read"})
}
