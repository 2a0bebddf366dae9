// Package translator adapts an external machine-translation API.
package translator

import "context"

// Translator maps a word from the source language to the target language
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
