package domain

import "time"

// Round holds the data for a single round: the secret, the impostor and
// the progress of the reveal sequence.
type Round struct {
	Number        int       `json:"number"`
	Category      Category  `json:"category"`
	SecretWord    string    `json:"secretWord"`
	Players       []Player  `json:"players"`
	ImpostorIndex int       `json:"impostorIndex"` // 0-based into Players
	CurrentTurn   int       `json:"currentTurn"`   // advances 0..len(Players)
	Votes         []*Vote   `json:"votes"`
	StartedAt     time.Time `json:"startedAt"`

	// revealed is set once the current player has requested their card
	revealed bool
}

// StartRound creates a new round. The secret word is drawn before the impostor.
func StartRound(rng Rand, category Category, players []Player, settings Settings) (*Round, error) {
	return startRound(rng, category, players, settings, nil)
}

func startRound(rng Rand, category Category, players []Player, settings Settings, usedWords []string) (*Round, error) {
	if len(players) == 0 || len(players) < settings.MinPlayers {
		return nil, ErrInsufficientPlayers
	}
	if settings.MaxPlayers > 0 && len(players) > settings.MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	secretWord, err := PickSecretWordExcluding(rng, category, usedWords)
	if err != nil {
		return nil, err
	}

	impostorIdx := rng.IntN(len(players))

	seats := make([]Player, len(players))
	copy(seats, players)
	for i := range seats {
		if i == impostorIdx {
			seats[i].Role = RoleImpostor
		} else {
			seats[i].Role = RoleCivilian
		}
	}

	return &Round{
		Category:      category,
		SecretWord:    secretWord,
		Players:       seats,
		ImpostorIndex: impostorIdx,
		CurrentTurn:   0,
		Votes:         make([]*Vote, 0),
		StartedAt:     time.Now(),
	}, nil
}

// Impostor returns the player holding the impostor role
func (r *Round) Impostor() Player {
	return r.Players[r.ImpostorIndex]
}

// ImpostorID returns the 1-based id of the impostor
func (r *Round) ImpostorID() int {
	return r.Players[r.ImpostorIndex].ID
}

// Civilians returns every player except the impostor, in seat order
func (r *Round) Civilians() []Player {
	civilians := make([]Player, 0, len(r.Players)-1)
	for i, p := range r.Players {
		if i != r.ImpostorIndex {
			civilians = append(civilians, p)
		}
	}
	return civilians
}

// PlayerByID returns the player with the given 1-based id
func (r *Round) PlayerByID(id int) (Player, error) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, ErrPlayerNotFound
}

// PlayerInfoList returns all players as PlayerInfo
func (r *Round) PlayerInfoList() []PlayerInfo {
	infos := make([]PlayerInfo, 0, len(r.Players))
	for _, p := range r.Players {
		infos = append(infos, p.ToInfo())
	}
	return infos
}
