// Package support exposes the support chat endpoints.
package support

import (
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/middleware"
	supportsvc "github.com/gibraltarbank/gibraltar/pkg/service/support"
	"github.com/gibraltarbank/gibraltar/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MessageInput is either a canned topic selection or a free-text message.
type MessageInput struct {
	TopicID string `json:"topic_id"`
	Body    string `json:"body"`
}

// Routes registers the support chat endpoints.
func Routes(
	app *fiber.App,
	supportSvc *supportsvc.Service,
	cfg *config.App,
) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/support/quick-assistance", protected, QuickAssistance())
	app.Post("/support/chats", protected, StartChat(supportSvc))
	app.Get("/support/chats/:id/messages", protected, History(supportSvc))
	app.Post("/support/chats/:id/messages", protected, Send(supportSvc))
	app.Delete("/support/chats/:id", protected, Reset(supportSvc))
}

// QuickAssistance returns the canned topic catalog.
// @Summary List quick assistance topics
// @Tags support
// @Produce json
// @Success 200 {object} common.Response
// @Router /support/quick-assistance [get]
// @Security Bearer
func QuickAssistance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Quick assistance", supportsvc.Topics)
	}
}

// StartChat opens a conversation seeded with the welcome message.
// @Summary Start support chat
// @Tags support
// @Produce json
// @Success 201 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /support/chats [post]
// @Security Bearer
func StartChat(supportSvc *supportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		chat := supportSvc.StartChat(userID)
		return common.SuccessResponseJSON(
			c, fiber.StatusCreated, "Chat started", chat)
	}
}

// History returns the conversation.
// @Summary Chat history
// @Tags support
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /support/chats/{id}/messages [get]
// @Security Bearer
func History(supportSvc *supportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, chatID, ok := chatParams(c)
		if !ok {
			return nil
		}
		chat, err := supportSvc.History(userID, chatID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load chat", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Chat", chat)
	}
}

// Send appends a topic question or free-text message and its reply.
// @Summary Send chat message
// @Tags support
// @Accept json
// @Produce json
// @Param id path string true "Chat ID"
// @Param request body MessageInput true "Topic or free-text message"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /support/chats/{id}/messages [post]
// @Security Bearer
func Send(supportSvc *supportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, chatID, ok := chatParams(c)
		if !ok {
			return nil
		}
		input, err := common.BindAndValidate[MessageInput](c)
		if input == nil {
			return err
		}

		var chat *supportsvc.Chat
		if input.TopicID != "" {
			chat, err = supportSvc.Ask(userID, chatID, input.TopicID)
		} else {
			chat, err = supportSvc.Say(userID, chatID, input.Body)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to send message", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Chat", chat)
	}
}

// Reset discards the conversation so a new chat can begin.
// @Summary Reset chat
// @Tags support
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /support/chats/{id} [delete]
// @Security Bearer
func Reset(supportSvc *supportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, chatID, ok := chatParams(c)
		if !ok {
			return nil
		}
		if err := supportSvc.Reset(userID, chatID); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reset chat", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Chat reset", nil)
	}
}

// chatParams resolves the caller and chat id, writing the error response
// itself when either is invalid.
func chatParams(c *fiber.Ctx) (userID, chatID uuid.UUID, ok bool) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.ProblemDetailsJSON(c, "Unauthorized", err) //nolint:errcheck
		return uuid.Nil, uuid.Nil, false
	}
	chatID, err = uuid.Parse(c.Params("id"))
	if err != nil {
		//nolint:errcheck
		common.ProblemDetailsJSON(
			c, "Invalid chat ID", err, fiber.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, chatID, true
}
