package domain

// View types rendered by the presentation layer

// SetupView is shown while choosing category and players
type SetupView struct {
	Variant     Variant        `json:"variant"`
	Categories  []CategoryInfo `json:"categories"`
	Category    Category       `json:"category,omitempty"`
	PlayerCount int            `json:"playerCount"`
	Roster      []string       `json:"roster,omitempty"`
	MinPlayers  int            `json:"minPlayers"`
	MaxPlayers  int            `json:"maxPlayers"`
	CanStart    bool           `json:"canStart"`
}

// TurnView is shown while the device is passed around
type TurnView struct {
	Round        int    `json:"round"`
	CategoryName string `json:"categoryName"`
	PlayerID     int    `json:"playerId,omitempty"`
	PlayerName   string `json:"playerName,omitempty"`
	Turn         int    `json:"turn"`
	TotalPlayers int    `json:"totalPlayers"`
	Revealed     bool   `json:"revealed"`
	AllRevealed  bool   `json:"allRevealed"`
	CanVote      bool   `json:"canVote"`
}

// VotingView is shown while choosing a suspect
type VotingView struct {
	Players        []PlayerInfo `json:"players"`
	AllVotersAgree bool         `json:"allVotersAgree"`
	VotedCount     int          `json:"votedCount"`
	Selected       int          `json:"selected,omitempty"`
	CanFinish      bool         `json:"canFinish"`
}

// SetupView returns the current setup state
func (g *Game) SetupView() SetupView {
	view := SetupView{
		Variant:     g.Settings.Variant,
		Categories:  Categories(),
		Category:    g.Category,
		PlayerCount: g.PlayerCount,
		MinPlayers:  g.Settings.MinPlayers,
		MaxPlayers:  g.Settings.MaxPlayers,
		CanStart:    g.CanStart(),
	}
	if g.Settings.UsesRoster() {
		view.Roster = g.Roster.Names()
		view.PlayerCount = g.Roster.Len()
	}
	return view
}

// TurnView returns the reveal progress of the current round
func (g *Game) TurnView() TurnView {
	r := g.CurrentRound
	if r == nil {
		return TurnView{}
	}

	view := TurnView{
		Round:        r.Number,
		CategoryName: r.Category.DisplayName(),
		Turn:         r.CurrentTurn,
		TotalPlayers: len(r.Players),
		Revealed:     r.HasRevealed(),
		AllRevealed:  r.AllRevealed(),
		CanVote:      g.Settings.Voting,
	}
	if p, ok := r.CurrentPlayer(); ok {
		view.PlayerID = p.ID
		view.PlayerName = p.DisplayName()
	}
	return view
}

// VotingView returns the voting state of the current round
func (g *Game) VotingView() VotingView {
	r := g.CurrentRound
	if r == nil {
		return VotingView{}
	}

	view := VotingView{
		Players:        r.PlayerInfoList(),
		AllVotersAgree: g.Settings.AllVotersAgree,
		VotedCount:     len(r.Votes),
		CanFinish:      r.AllVoted(),
	}
	if g.Settings.AllVotersAgree && len(r.Votes) > 0 {
		view.Selected = r.Votes[0].SuspectID
		view.CanFinish = true
	}
	return view
}
