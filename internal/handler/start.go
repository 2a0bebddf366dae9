package handler

import (
	"fmt"
	"strings"

	"lexibot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: the user row is already upserted by the
// registration middleware, so this only resets state and shows the entry
// keyboard.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.Clear(userID)

	return c.Send(
		"Привет 👋\n"+
			"Давай потренируемся в английском!\n\n"+
			"Ты можешь собирать свою базу для обучения:\n\n"+
			"➕ Добавить слово: /add\n"+
			"🔙 Удалить слово: /delete\n\n"+
			"Ну что, поехали? ⬇️",
		startKeyboard(),
	)
}

// handleAdd handles /add
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.Set(userID, domain.StateAwaitingAddWord)

	return c.Send("Введите слово, которое хотите добавить ✍️")
}

// handleDelete handles /delete
func (h *Handler) handleDelete(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.Set(userID, domain.StateAwaitingDeleteWord)

	return c.Send("Введите слово, которое хотите удалить ✍️")
}

// handleListWords handles /list_words; works in any state and does not
// change it.
func (h *Handler) handleListWords(c tele.Context) error {
	userID := c.Sender().ID

	pairs, err := h.wordService.ListWords(userID)
	if err != nil {
		h.logger.Error("Failed to list words",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if len(pairs) == 0 {
		return c.Send("У вас нет добавленных слов")
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%s - %s", p.Word, p.Translation))
	}
	return c.Send(strings.Join(lines, "\n"))
}
