package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tucomercio/internal/usecase"
	"tucomercio/pkg/logger"
)

// ReviewStreamHandler pushes live review snapshots for one business over a
// websocket. Each connection owns one subscription; closing either side
// tears down the other.
type ReviewStreamHandler struct {
	reviewUseCase *usecase.ReviewUseCase
	upgrader      websocket.Upgrader
}

func NewReviewStreamHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewStreamHandler {
	return &ReviewStreamHandler{
		reviewUseCase: reviewUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *ReviewStreamHandler) StreamReviews(c echo.Context) error {
	businessID := c.Param("businessId")

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := c.Request().Context()

	stream, err := h.reviewUseCase.Subscribe(ctx, businessID)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return nil
	}
	defer stream.Close()

	// Reader goroutine: we never expect client messages, but reading is the
	// only way to notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case reviews, ok := <-stream.Updates():
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return nil
			}
			if err := conn.WriteJSON(reviews); err != nil {
				logger.Debug("Review stream write failed for %s: %v", businessID, err)
				return nil
			}
		case <-done:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}
