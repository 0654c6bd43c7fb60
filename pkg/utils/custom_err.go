package utils

import "errors"

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrArchetypeNotFound  = errors.New("archetype not found")
	ErrResultNotFound     = errors.New("quiz result not found")
	ErrInvalidAnswer      = errors.New("invalid answer")
	ErrIncompleteQuiz     = errors.New("quiz is incomplete")
	ErrInvalidFeedback    = errors.New("feedback must be between 1 and 5")
	ErrInvalidResultID    = errors.New("invalid result id")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrPersistenceFailed  = errors.New("failed to persist quiz result")
	ErrNarratorDisabled   = errors.New("narrator is not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
