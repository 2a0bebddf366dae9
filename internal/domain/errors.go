package domain

import "errors"

var (
	// ErrEmptyPool means the user has no words anywhere to quiz on.
	ErrEmptyPool = errors.New("no words available")

	// ErrNotFound means a delete matched zero rows.
	ErrNotFound = errors.New("word not found")

	// ErrTranslationFailed means the translation call errored or came back empty.
	ErrTranslationFailed = errors.New("translation failed")
)
