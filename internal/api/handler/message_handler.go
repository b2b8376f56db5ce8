package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// MessageHandler owns the direct-messaging endpoints.
type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type sendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Body        string `json:"body" validate:"required"`
}

// Send delivers a message to another user.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      422   {object}  map[string]string
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messageService.Send(c.Request().Context(), sess.UserID, req.RecipientID, req.Subject, req.Body)
	if err != nil {
		return err
	}
	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// Inbox lists the caller's received messages, newest first.
//
// @Summary      List received messages
// @Tags         messages
// @Produce      json
// @Success      200  {array}  domain.Message
// @Router       /messages [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	msgs, err := h.messageService.Inbox(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// MarkRead stamps one of the caller's messages as read.
//
// @Summary      Mark a message read
// @Tags         messages
// @Param        id  path  int  true  "Message ID"
// @Success      204
// @Router       /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.messageService.MarkRead(c.Request().Context(), sess.UserID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
