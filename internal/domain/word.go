package domain

// MaxWordLen is the per-side length limit for a word pair, in runes.
// Matches the VARCHAR(30) columns in the schema.
const MaxWordLen = 30

// WordPair is a word with its translation
type WordPair struct {
	Word        string
	Translation string
}

// QuizQuestion is a single multiple-choice round. It lives only for one
// question/answer round-trip and is never persisted: the correct answer
// travels inside each option's callback payload.
type QuizQuestion struct {
	Prompt  string
	Correct string
	Options []string
}
