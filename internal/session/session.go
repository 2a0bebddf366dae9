// Package session tracks what each user is currently doing between
// messages. State lives in process memory only: a restart drops every
// in-flight add/delete flow back to idle, which is accepted behavior.
package session

import "lexibot/internal/domain"

// Store holds per-user interaction state
type Store interface {
	Get(userID int64) domain.UserState
	Set(userID int64, state domain.UserState)
	Clear(userID int64)
}
