package humanid

import "errors"

var (
	ErrInvalidWordCount = errors.New("word count must be between 1 and 5")
	ErrEmptyCategory    = errors.New("vocabulary category has no words")
)
