package domain

import "time"

// Game is the state of one table: its setup choices, the roster and the
// round being played. It is owned by a single caller and is not safe for
// concurrent use.
type Game struct {
	ID           string    `json:"id"`
	Settings     Settings  `json:"settings"`
	Category     Category  `json:"category,omitempty"`
	PlayerCount  int       `json:"playerCount"`
	Roster       *Roster   `json:"-"`
	CurrentRound *Round    `json:"currentRound,omitempty"`
	RoundHistory []*Round  `json:"roundHistory"`
	Phase        Phase     `json:"phase"`
	Suspect      *int      `json:"suspect,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	rng Rand
}

// NewGame creates a table in the setup phase
func NewGame(id string, settings Settings, rng Rand) *Game {
	return &Game{
		ID:           id,
		Settings:     settings,
		Roster:       NewRoster(nil),
		RoundHistory: make([]*Round, 0),
		Phase:        PhaseSetup,
		CreatedAt:    time.Now(),
		rng:          rng,
	}
}

// ChooseCategory selects the category for the next round
func (g *Game) ChooseCategory(key string) error {
	if g.Phase != PhaseSetup {
		return ErrInvalidPhase
	}

	c, err := ParseCategory(key)
	if err != nil {
		return err
	}

	g.Category = c
	return nil
}

// ChoosePlayerCount sets the number of numbered players
func (g *Game) ChoosePlayerCount(n int) error {
	if g.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	if g.Settings.UsesRoster() {
		return ErrInvalidPhase
	}
	if n < 1 || n < g.Settings.MinPlayers {
		return ErrInsufficientPlayers
	}
	if g.Settings.MaxPlayers > 0 && n > g.Settings.MaxPlayers {
		return ErrTooManyPlayers
	}

	g.PlayerCount = n
	return nil
}

// AddPlayer appends a name to the roster
func (g *Game) AddPlayer(name string) error {
	if g.Phase != PhaseSetup || !g.Settings.UsesRoster() {
		return ErrInvalidPhase
	}
	if g.Settings.MaxPlayers > 0 && g.Roster.Len() >= g.Settings.MaxPlayers {
		return ErrTooManyPlayers
	}
	return g.Roster.AddName(name)
}

// RemovePlayer removes the roster entry at index
func (g *Game) RemovePlayer(index int) error {
	if g.Phase != PhaseSetup || !g.Settings.UsesRoster() {
		return ErrInvalidPhase
	}
	return g.Roster.RemoveAt(index)
}

// LoadRoster replaces the roster with previously saved names
func (g *Game) LoadRoster(names []string) {
	g.Roster = NewRoster(names)
}

// Players returns the seats for the next round
func (g *Game) Players() []Player {
	if g.Settings.UsesRoster() {
		return NewNamedPlayers(g.Roster.Names())
	}
	return NewPositionalPlayers(g.PlayerCount)
}

// CanStart checks if the table is ready to deal
func (g *Game) CanStart() bool {
	if g.Phase != PhaseSetup || g.Category == "" {
		return false
	}
	n := len(g.Players())
	if n == 0 || n < g.Settings.MinPlayers {
		return false
	}
	return g.Settings.MaxPlayers == 0 || n <= g.Settings.MaxPlayers
}

// Start deals a new round. With AvoidRepeatWords, words already played at
// this table in the same category are skipped.
func (g *Game) Start() (*Round, error) {
	if !g.Phase.CanTransitionTo(PhaseReveal) {
		return nil, ErrInvalidPhase
	}
	if g.Category == "" {
		return nil, ErrInvalidCategory
	}

	var usedWords []string
	if g.Settings.AvoidRepeatWords {
		for _, round := range g.RoundHistory {
			if round.Category == g.Category {
				usedWords = append(usedWords, round.SecretWord)
			}
		}
	}

	round, err := startRound(g.rng, g.Category, g.Players(), g.Settings, usedWords)
	if err != nil {
		return nil, err
	}
	round.Number = len(g.RoundHistory) + 1

	g.CurrentRound = round
	g.Suspect = nil
	g.Phase = PhaseReveal

	return round, nil
}

// Reveal shows the current player's card
func (g *Game) Reveal() (RoleView, error) {
	if g.Phase != PhaseReveal || g.CurrentRound == nil {
		return RoleView{}, ErrInvalidPhase
	}
	return g.CurrentRound.Reveal()
}

// Advance moves to the next player
func (g *Game) Advance() (TurnState, error) {
	if g.Phase != PhaseReveal || g.CurrentRound == nil {
		return TurnState{}, ErrInvalidPhase
	}
	return g.CurrentRound.Advance()
}

// OpenVoting moves to the voting phase once every card has been seen
func (g *Game) OpenVoting() error {
	if !g.Settings.Voting {
		return ErrVotingDisabled
	}
	if !g.Phase.CanTransitionTo(PhaseVoting) || g.CurrentRound == nil {
		return ErrInvalidPhase
	}
	if !g.CurrentRound.AllRevealed() {
		return ErrOutOfSequence
	}

	g.Phase = PhaseVoting
	return nil
}

// Vote records a vote. With AllVotersAgree the voter is ignored and the
// choice stands for everyone.
func (g *Game) Vote(voterID, suspectID int) error {
	if g.Phase != PhaseVoting || g.CurrentRound == nil {
		return ErrInvalidPhase
	}
	if g.Settings.AllVotersAgree {
		return g.CurrentRound.CastBallot(suspectID)
	}
	return g.CurrentRound.CastVote(voterID, suspectID)
}

// Finish closes the round and returns the results. Without voting the
// results carry no verdict. Per-voter tables wait for every ballot.
func (g *Game) Finish() (ResultView, error) {
	if g.CurrentRound == nil {
		return ResultView{}, ErrNoRound
	}

	switch g.Phase {
	case PhaseVoting:
		suspect, err := g.CurrentRound.Tally()
		if err != nil {
			return ResultView{}, err
		}
		if !g.Settings.AllVotersAgree && !g.CurrentRound.AllVoted() {
			return ResultView{}, ErrOutOfSequence
		}
		g.Suspect = &suspect
	case PhaseReveal:
		if g.Settings.Voting {
			return ResultView{}, ErrInvalidPhase
		}
		if !g.CurrentRound.AllRevealed() {
			return ResultView{}, ErrOutOfSequence
		}
	default:
		return ResultView{}, ErrInvalidPhase
	}

	g.RoundHistory = append(g.RoundHistory, g.CurrentRound)
	g.Phase = PhaseResults

	return ComposeResults(g.CurrentRound, g.Suspect), nil
}

// Results returns the results of the finished round
func (g *Game) Results() (ResultView, error) {
	if g.Phase != PhaseResults || g.CurrentRound == nil {
		return ResultView{}, ErrInvalidPhase
	}
	return ComposeResults(g.CurrentRound, g.Suspect), nil
}

// Reset returns to setup following the table's roster policy
func (g *Game) Reset() {
	g.ResetRound(!g.Settings.ResetClearsRoster)
}

// ResetRound discards the round and the category choice. keepRoster
// retains the players (names or count) for the next round.
func (g *Game) ResetRound(keepRoster bool) {
	g.CurrentRound = nil
	g.Suspect = nil
	g.Category = ""
	g.Phase = PhaseSetup

	if !keepRoster {
		g.PlayerCount = 0
		g.Roster.Clear()
	}
}
