package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"marketadmin/internal/usecase"
	"marketadmin/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// GetChats returns the operator's conversation roster, newest activity
// first. The console fetches this once and then applies live events.
func (h *ChatHandler) GetChats(c echo.Context) error {
	uid := c.Get("uid").(string)

	limit, offset := limitOffset(c, 100)

	chats, total, err := h.chatUseCase.GetOperatorChats(c.Request().Context(), uid, limit, offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, chats, total, pageFromOffset(offset, limit), limit)
}

// GetMessages returns a thread's history, oldest first.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	chatID := c.Param("id")

	limit, offset := limitOffset(c, 50)

	messages, total, err := h.chatUseCase.GetChatMessages(c.Request().Context(), uid, chatID, limit, offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pageFromOffset(offset, limit), limit)
}

// SendMessage is the request/response send path, used when the console has
// no live transport.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, usecase.SendMessageInput{
		ChatID:  c.Param("id"),
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.chatUseCase.MarkChatAsRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "read"})
}

func limitOffset(c echo.Context, defaultLimit int) (int, int) {
	limit := defaultLimit
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

func pageFromOffset(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return (offset / limit) + 1
}
