package domain

import "errors"

var (
	// ErrEmptyPool is returned when no question matches the requested difficulty.
	ErrEmptyPool = errors.New("no questions match that difficulty")
	// ErrBankUnavailable indicates the question bank could not be loaded.
	ErrBankUnavailable = errors.New("question bank unavailable")
	// ErrStoreWrite indicates a finished result could not be persisted.
	// It is the one storage failure surfaced to the player.
	ErrStoreWrite = errors.New("leaderboard write failed")
)
