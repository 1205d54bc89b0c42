package app

import (
	"errors"

	"impostor/internal/domain"
)

// ErrTableNotFound is returned for unknown table codes
var ErrTableNotFound = errors.New("table not found")

// Validation codes sent to the display
const (
	CodeInvalidCategory     = "INVALID_CATEGORY"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeTooManyPlayers      = "TOO_MANY_PLAYERS"
	CodeDuplicatePlayerName = "DUPLICATE_PLAYER_NAME"
	CodeEmptyPlayerName     = "EMPTY_PLAYER_NAME"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeNoVotesCast         = "NO_VOTES_CAST"
	CodeAlreadyVoted        = "ALREADY_VOTED"
	CodeInvalidSuspect      = "INVALID_SUSPECT"
	CodeOutOfSequence       = "OUT_OF_SEQUENCE"
	CodeInvalidAction       = "INVALID_ACTION"
	CodeTableNotFound       = "TABLE_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err     error
	code    string
	message string
}{
	{domain.ErrInvalidCategory, CodeInvalidCategory, "Choose a category first"},
	{domain.ErrInsufficientPlayers, CodeInsufficientPlayers, "Not enough players to start"},
	{domain.ErrTooManyPlayers, CodeTooManyPlayers, "Too many players"},
	{domain.ErrDuplicatePlayerName, CodeDuplicatePlayerName, "That name is already taken"},
	{domain.ErrEmptyPlayerName, CodeEmptyPlayerName, "Enter a name"},
	{domain.ErrPlayerNotFound, CodePlayerNotFound, "Player not found"},
	{domain.ErrNoVotesCast, CodeNoVotesCast, "Pick a suspect first"},
	{domain.ErrAlreadyVoted, CodeAlreadyVoted, "You have already voted"},
	{domain.ErrInvalidSuspect, CodeInvalidSuspect, "Invalid suspect"},
	{domain.ErrOutOfSequence, CodeOutOfSequence, "Not yet"},
	{domain.ErrInvalidPhase, CodeInvalidAction, "Cannot do that now"},
	{domain.ErrVotingDisabled, CodeInvalidAction, "This table does not vote"},
	{domain.ErrNoRound, CodeInvalidAction, "No round in progress"},
	{ErrTableNotFound, CodeTableNotFound, "Table not found"},
}

// ErrorCode maps an error to a validation code and a user-facing message
func ErrorCode(err error) (string, string) {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code, e.message
		}
	}
	return CodeInternalError, "Something went wrong"
}
