package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexibot/internal/domain"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText consumes free-text messages according to the user's state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Unrecognized commands fall through to OnText; ignore them
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	switch h.sessions.Get(userID) {
	case domain.StateAwaitingAddWord:
		return h.completeAddWord(c, userID, text)
	case domain.StateAwaitingDeleteWord:
		return h.completeDeleteWord(c, userID, text)
	default:
		return c.Send("Я понимаю только команды: /add, /delete, /list_words")
	}
}

// completeAddWord finishes the add flow. Whatever happens, the user ends
// up idle: a failed add is reported and requires a fresh /add.
func (h *Handler) completeAddWord(c tele.Context, userID int64, text string) error {
	defer h.sessions.Clear(userID)

	pair, err := h.wordService.AddWord(context.Background(), userID, text)
	switch {
	case errors.Is(err, service.ErrInvalidWord):
		return c.Send("Так не получится: слово должно быть не длиннее 30 символов и без '_'")
	case errors.Is(err, domain.ErrTranslationFailed):
		h.logger.Warn("Translation failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Не удалось перевести слово 😔 Попробуйте ещё раз: /add")
	case err != nil:
		h.logger.Error("Failed to add word",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("Word added",
		zap.Int64("user_id", userID),
		zap.String("word", pair.Word),
		zap.String("translation", pair.Translation),
	)

	return c.Send(fmt.Sprintf("✅ Слово '%s: %s' добавлено!", pair.Word, pair.Translation))
}

// completeDeleteWord finishes the delete flow and resets state
func (h *Handler) completeDeleteWord(c tele.Context, userID int64, text string) error {
	defer h.sessions.Clear(userID)

	word := strings.TrimSpace(text)

	err := h.wordService.DeleteWord(userID, word)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, service.ErrInvalidWord):
		return c.Send(fmt.Sprintf("❌ Слово '%s' не найдено!", word))
	case err != nil:
		h.logger.Error("Failed to delete word",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.String("word", word),
	)

	return c.Send(fmt.Sprintf("✅ Слово '%s' удалено!", word))
}
