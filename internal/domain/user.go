package domain

// User represents a bot user
type User struct {
	TelegramID int64
	Username   string
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateAwaitingAddWord    UserState = "awaiting_add_word"
	StateAwaitingDeleteWord UserState = "awaiting_delete_word"
)
