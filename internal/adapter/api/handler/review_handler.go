package handler

import (
	"github.com/labstack/echo/v4"

	"tucomercio/internal/usecase"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reportReviewRequest struct {
	Reason  string `json:"reason" validate:"required"`
	Details string `json:"details,omitempty"`
}

func (h *ReviewHandler) ReportReview(c echo.Context) error {
	businessID := c.Param("businessId")
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	var req reportReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reviewUseCase.Report(c.Request().Context(), businessID, reviewID, usecase.ReportInput{
		Reason:  req.Reason,
		Details: req.Details,
	})

	if err != nil {
		// A partial failure still created the report; the 207 envelope
		// carries the warning while the report document stands.
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

type replyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *ReviewHandler) ReplyToReview(c echo.Context) error {
	businessID := c.Param("businessId")
	reviewID := c.Param("reviewId")

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.reviewUseCase.Reply(c.Request().Context(), businessID, reviewID, req.Content); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"status": "replied"})
}

func (h *ReviewHandler) EditReply(c echo.Context) error {
	businessID := c.Param("businessId")
	reviewID := c.Param("reviewId")

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.reviewUseCase.EditReply(c.Request().Context(), businessID, reviewID, req.Content); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "updated"})
}

func (h *ReviewHandler) DeleteReply(c echo.Context) error {
	businessID := c.Param("businessId")
	reviewID := c.Param("reviewId")

	if err := h.reviewUseCase.DeleteReply(c.Request().Context(), businessID, reviewID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

type resolveReportRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved rejected"`
}

func (h *ReviewHandler) ResolveReport(c echo.Context) error {
	businessID := c.Param("businessId")
	reviewID := c.Param("reviewId")
	reportID := c.Param("reportId")

	var req resolveReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	resolvedBy, _ := c.Get("uid").(string)

	if err := h.reviewUseCase.ResolveReport(
		c.Request().Context(),
		businessID,
		reviewID,
		reportID,
		req.Status,
		resolvedBy,
	); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": req.Status})
}
