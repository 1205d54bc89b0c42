package domain

import "strconv"

// Player is one seat at the table for a single round
type Player struct {
	ID   int    `json:"id"`             // 1-based position
	Name string `json:"name,omitempty"` // empty in the positional variant
	Role Role   `json:"role,omitempty"`
}

// DisplayName returns the player's name, or "Player N" when unnamed
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return "Player " + strconv.Itoa(p.ID)
}

// PlayerInfo is a role-free view of a player
type PlayerInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ToInfo converts a Player to PlayerInfo (without role)
func (p Player) ToInfo() PlayerInfo {
	return PlayerInfo{
		ID:   p.ID,
		Name: p.DisplayName(),
	}
}

// NewPositionalPlayers builds n unnamed players with ids 1..n
func NewPositionalPlayers(n int) []Player {
	players := make([]Player, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		players = append(players, Player{ID: i})
	}
	return players
}

// NewNamedPlayers builds one player per name, keeping roster order
func NewNamedPlayers(names []string) []Player {
	players := make([]Player, 0, len(names))
	for i, name := range names {
		players = append(players, Player{ID: i + 1, Name: name})
	}
	return players
}
