package domain

import "strconv"

// TurnState is the reveal progress of a round
type TurnState struct {
	Index       int  `json:"index"`
	AllRevealed bool `json:"allRevealed"`
}

// String returns AwaitingReveal(i) or AllRevealed
func (s TurnState) String() string {
	if s.AllRevealed {
		return "AllRevealed"
	}
	return "AwaitingReveal(" + strconv.Itoa(s.Index) + ")"
}

// RoleView is what the current player sees when their card is flipped
type RoleView struct {
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	Role       Role   `json:"role"`
	SecretWord string `json:"secretWord,omitempty"` // only for civilians
}

// TurnState returns the current state of the reveal sequence
func (r *Round) TurnState() TurnState {
	return TurnState{
		Index:       r.CurrentTurn,
		AllRevealed: r.AllRevealed(),
	}
}

// AllRevealed returns true once every player has seen their card
func (r *Round) AllRevealed() bool {
	return r.CurrentTurn >= len(r.Players)
}

// CurrentPlayer returns the player whose turn it is to look
func (r *Round) CurrentPlayer() (Player, bool) {
	if r.AllRevealed() {
		return Player{}, false
	}
	return r.Players[r.CurrentTurn], true
}

// HasRevealed reports whether the current player has already flipped their card
func (r *Round) HasRevealed() bool {
	return r.revealed
}

// Reveal returns the current player's card. Repeated calls before Advance
// return the same view.
func (r *Round) Reveal() (RoleView, error) {
	player, ok := r.CurrentPlayer()
	if !ok {
		return RoleView{}, ErrOutOfSequence
	}

	r.revealed = true

	view := RoleView{
		PlayerID:   player.ID,
		PlayerName: player.DisplayName(),
		Role:       player.Role,
	}
	if player.Role == RoleCivilian {
		view.SecretWord = r.SecretWord
	}
	return view, nil
}

// Advance passes the device to the next player
func (r *Round) Advance() (TurnState, error) {
	if r.AllRevealed() || !r.revealed {
		return r.TurnState(), ErrOutOfSequence
	}

	r.CurrentTurn++
	r.revealed = false

	return r.TurnState(), nil
}
