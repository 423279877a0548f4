package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/message"
)

type MessageHandler struct {
	messageService message.Service
}

func NewMessageHandler(messageService message.Service) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	sent, err := h.messageService.Send(c.Context(), actor, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("Recipient not found")
		case errors.Is(err, message.ErrEmptyContent):
			return middleware.BadRequest("Message content cannot be empty")
		case errors.Is(err, message.ErrSelfMessage):
			return middleware.BadRequest("Cannot send a message to yourself")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sent)
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var otherUserID *uuid.UUID
	if raw := c.Query("with"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid user ID")
		}
		otherUserID = &parsed
	}

	messages, err := h.messageService.List(c.Context(), actor.ID, otherUserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *MessageHandler) MarkAsRead(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	messageID, err := uuid.Parse(c.Params("messageId"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	if err := h.messageService.MarkAsRead(c.Context(), messageID, actor.ID); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			return middleware.NotFound("Message not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Message marked as read"})
}
