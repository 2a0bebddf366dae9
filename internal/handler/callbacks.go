package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"lexibot/internal/domain"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseAnswerPayload unpacks "<chosen>_<correct>". Anything that does not
// split into exactly two parts is malformed.
func parseAnswerPayload(data string) (chosen, correct string, err error) {
	parts := strings.Split(data, service.PayloadSeparator)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("payload %q does not split into two parts", data)
	}
	return parts[0], parts[1], nil
}

// handleCallback handles quiz button presses. These are valid in any
// session state and never change it.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	userID := c.Sender().ID
	data := cleanCallbackData(callback.Data)

	if data == sentinelNext {
		return h.sendQuestion(c, userID)
	}

	chosen, correct, err := parseAnswerPayload(data)
	if err != nil {
		h.logger.Warn("Malformed answer payload",
			zap.Int64("user_id", userID),
			zap.String("data", data),
		)
		return c.Respond()
	}

	if h.quizService.CheckAnswer(chosen, correct) {
		if err := c.Send("Совершенно верно! 🎉", nextKeyboard()); err != nil {
			return err
		}
	} else {
		if err := c.Send("Неверно ❌"); err != nil {
			return err
		}
	}

	return c.Respond()
}

// sendQuestion generates and sends the next quiz question
func (h *Handler) sendQuestion(c tele.Context, userID int64) error {
	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	q, err := h.quizService.GenerateQuestion(userID)
	if errors.Is(err, domain.ErrEmptyPool) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "У тебя пока нет слов. Добавь первое: /add",
			ShowAlert: true,
		})
	}
	if err != nil {
		h.logger.Error("Failed to generate question",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке. Попробуйте позже."})
	}

	if err := c.Send(
		fmt.Sprintf("Как переводится слово: %s", q.Prompt),
		optionsKeyboard(q),
	); err != nil {
		return err
	}

	return c.Respond()
}
