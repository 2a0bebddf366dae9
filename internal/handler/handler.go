package handler

import (
	"sync"

	"lexibot/internal/domain"
	"lexibot/internal/service"
	"lexibot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler routes bot events to the right flow based on the user's
// session state.
type Handler struct {
	bot         *tele.Bot
	userService *service.UserService
	wordService *service.WordService
	quizService *service.QuizService
	sessions    session.Store
	logger      *zap.Logger

	// Per-user locks so an unordered transport cannot interleave one
	// user's add/delete flow with itself.
	userMux   sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userService *service.UserService,
	wordService *service.WordService,
	quizService *service.QuizService,
	sessions session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		userService: userService,
		wordService: wordService,
		quizService: quizService,
		sessions:    sessions,
		logger:      logger,
		userLocks:   make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/delete", h.handleDelete)
	h.bot.Handle("/list_words", h.handleListWords)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (quiz buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// userLock returns the per-user mutex, creating it on first use
func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.userMux.Lock()
	defer h.userMux.Unlock()

	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	return lock
}

// sentinelNext is the fixed payload of the start/next-question button
const sentinelNext = "go"

// startKeyboard returns the entry keyboard shown after /start
func startKeyboard() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("Поехали!", "", sentinelNext)),
	)
	return markup
}

// nextKeyboard returns the keyboard offering the next question
func nextKeyboard() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("Дальше ➡️", "", sentinelNext)),
	)
	return markup
}

// optionsKeyboard renders the quiz options two per row. Each button packs
// the chosen and the correct answer into its payload, so scoring needs no
// server-side question record.
func optionsKeyboard(q *domain.QuizQuestion) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var rows []tele.Row
	var row tele.Row
	for _, opt := range q.Options {
		row = append(row, markup.Data(opt, "", opt+service.PayloadSeparator+q.Correct))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup.Inline(rows...)
	return markup
}
