package domain

import "errors"

// Domain errors
var (
	ErrInvalidCategory     = errors.New("unknown category")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrTooManyPlayers      = errors.New("too many players")
	ErrDuplicatePlayerName = errors.New("player name already taken")
	ErrEmptyPlayerName     = errors.New("player name cannot be empty")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNoVotesCast         = errors.New("no votes cast")
	ErrAlreadyVoted        = errors.New("already voted this round")
	ErrInvalidSuspect      = errors.New("invalid vote target")
	ErrOutOfSequence       = errors.New("action out of sequence")
	ErrInvalidPhase        = errors.New("invalid action for current phase")
	ErrVotingDisabled      = errors.New("voting is disabled for this table")
	ErrNoRound             = errors.New("no round in progress")
)
